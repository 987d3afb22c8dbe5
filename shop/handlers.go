package shop

import (
	"net/http"

	"biffguide/utils"

	"github.com/julienschmidt/httprouter"
)

type productView struct {
	Product
	AffiliateURL string `json:"affiliate_url"`
	Card         string `json:"card"`
}

func viewsFor(category string) []productView {
	products := Catalog[category]
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, productView{
			Product:      p,
			AffiliateURL: AffiliateURL(p.Keyword),
			Card:         Card(p),
		})
	}
	return views
}

// GET /api/shop/categories
func GetCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"categories": Categories})
}

// GET /api/shop/products?category=캐리어
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	category := r.URL.Query().Get("category")
	if category == "" {
		all := map[string][]productView{}
		for _, c := range Categories {
			all[c] = viewsFor(c)
		}
		utils.RespondWithJSON(w, http.StatusOK, all)
		return
	}

	if _, ok := Catalog[category]; !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Unknown category")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"category": category, "products": viewsFor(category)})
}
