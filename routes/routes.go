package routes

import (
	"biffguide/chat"
	"biffguide/checklist"
	"biffguide/festival"
	"biffguide/itinerary"
	"biffguide/lodging"
	"biffguide/middleware"
	"biffguide/ratelim"
	"biffguide/session"
	"biffguide/shop"

	"github.com/julienschmidt/httprouter"
)

func AddSessionRoutes(router *httprouter.Router, h *session.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/session", rl.Limit(h.Start))
}

func AddFestivalRoutes(router *httprouter.Router) {
	router.GET("/api/festival/info", festival.GetInfo)
	router.GET("/api/festival/transport", festival.GetTransport)
	router.GET("/api/festival/restaurants", festival.GetRestaurants)
	router.GET("/api/festival/restaurants/:venue", festival.GetRestaurantsByVenue)
	router.GET("/api/festival/weather", festival.GetWeather)
	router.GET("/api/festival/lodging-tips", festival.GetLodgingTips)
}

func AddChatRoutes(router *httprouter.Router, h *chat.Handler, rl *ratelim.RateLimiter) {
	router.GET("/api/chat/messages", middleware.WithSession(h.GetMessages))
	router.POST("/api/chat/messages", rl.Limit(middleware.WithSession(h.PostMessage)))
	router.DELETE("/api/chat/messages", middleware.WithSession(h.ClearChat))
	router.GET("/api/chat/quick-questions", h.GetQuickQuestions)
}

func AddChecklistRoutes(router *httprouter.Router, h *checklist.Handler) {
	router.GET("/api/checklist", middleware.WithSession(h.GetChecklist))
	router.PUT("/api/checklist/:category/:item", middleware.WithSession(h.ToggleItem))
	router.POST("/api/checklist/check-all", middleware.WithSession(h.CheckAll))
	router.POST("/api/checklist/reset", middleware.WithSession(h.ResetAll))
}

func AddShopRoutes(router *httprouter.Router) {
	router.GET("/api/shop/categories", shop.GetCategories)
	router.GET("/api/shop/products", shop.GetProducts)
}

func AddLodgingRoutes(router *httprouter.Router, h *lodging.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/lodging/search", rl.Limit(middleware.WithSession(h.Search)))
	router.POST("/api/lodging/favorites/:id", middleware.WithSession(h.ToggleFavorite))
	router.GET("/api/lodging/favorites", middleware.WithSession(h.GetFavorites))
	router.POST("/api/lodging/price-alerts", middleware.WithSession(h.AddPriceAlert))
	router.GET("/api/lodging/price-alerts", middleware.WithSession(h.GetPriceAlerts))
}

func AddItineraryRoutes(router *httprouter.Router, h *itinerary.Handler, rl *ratelim.RateLimiter) {
	router.POST("/api/itinerary/generate", rl.Limit(middleware.WithSession(h.GenerateItinerary)))
	router.POST("/api/itinerary/saved", middleware.WithSession(h.SaveItinerary))
	router.GET("/api/itinerary/saved", middleware.WithSession(h.GetSavedItineraries))
	router.GET("/api/itinerary/saved/:id", middleware.WithSession(h.GetSavedItinerary))
	router.DELETE("/api/itinerary/saved/:id", middleware.WithSession(h.DeleteSavedItinerary))
	router.GET("/api/itinerary/saved/:id/pdf", middleware.WithSession(h.DownloadPDF))
}
