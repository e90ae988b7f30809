package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Store          StoreAdminSvc
	Carts          CartSvc
	Sales          SaleSvc
	Expenses       ExpenseSvc
	Inventory      InventorySvc
	Payments       PaymentSvc
	Workers        WorkerSvc
	WorkerPayments WorkerPaymentSvc
	WorkerLeaves   WorkerLeaveSvc
	Absences       AbsenceSvc
	Dashboard      DashboardSvc
	User           UserSvcFacade
	TokenService   TokenSvcFacade
	GoogleOAuth    GoogleOAuthSvcFacade
}
