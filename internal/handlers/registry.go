package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	ItemHandler        *ItemHandler
	ReservationHandler *ReservationHandler
	OrderHandler       *OrderHandler
	ReviewHandler      *ReviewHandler
	ChatHandler        *ChatHandler
	UploadHandler      *UploadHandler
	AdminHandler       *AdminHandler
}
