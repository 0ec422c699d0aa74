// controller/controllers.go
package controller

import "github.com/dev-mohitbeniwal/bookfeed/service"

type Controllers struct {
	Feed    *FeedController
	Book    *BookController
	Library *LibraryController
	User    *UserController
	Health  *HealthController
}

func InitializeControllers(services *service.Services, defaultLimit int, database, cache StatusFunc) *Controllers {
	return &Controllers{
		Feed:    NewFeedController(services.Feed, defaultLimit),
		Book:    NewBookController(services.Book),
		Library: NewLibraryController(services.Library),
		User:    NewUserController(services.User),
		Health:  NewHealthController(database, cache),
	}
}
