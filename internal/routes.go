package internal

import (
	"net/http"
	"wxledger/internal/controllers"
	"wxledger/internal/providers"
)

func InitRoutes(contractController *controllers.ContractController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/call", http.HandlerFunc(contractController.Call))
	routers.Get("/accuracy/user", http.HandlerFunc(contractController.GetUserAccuracy))
	routers.Get("/accuracy/location", http.HandlerFunc(contractController.GetLocationAccuracy))
	routers.Get("/weather", http.HandlerFunc(contractController.GetWeatherData))
	routers.Get("/oracle", http.HandlerFunc(contractController.IsAuthorizedOracle))
	return routers
}
