// service/services.go
package service

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/dev-mohitbeniwal/bookfeed/audit"
	"github.com/dev-mohitbeniwal/bookfeed/config"
	"github.com/dev-mohitbeniwal/bookfeed/dao"
	"github.com/dev-mohitbeniwal/bookfeed/ranking"
	"github.com/dev-mohitbeniwal/bookfeed/util"
)

type Services struct {
	Feed    *FeedService
	Book    IBookService
	Library ILibraryService
	User    IUserService
	Users   UserProvider
}

func InitializeServices(
	driver neo4j.DriverWithContext,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	eventBus *util.EventBus,
	feedConfig config.FeedConfiguration,
) (*Services, error) {
	bookDAO := dao.NewBookDAO(driver)
	libraryDAO := dao.NewLibraryDAO(driver)
	userDAO := dao.NewUserDAO(driver)

	if auditService != nil {
		NewAuditSubscriber(auditService, eventBus)
	}

	services := &Services{
		Feed: NewFeedService(bookDAO, libraryDAO, userDAO, cacheService, eventBus, FeedOptions{
			Workers:         feedConfig.Workers,
			QueueSize:       feedConfig.QueueSize,
			WarmConcurrency: feedConfig.WarmConcurrency,
			Scorer:          ranking.NewScorer(ranking.WithLimit(feedConfig.MaxCached)),
		}),
		Book:    NewBookService(bookDAO, libraryDAO, validationUtil, eventBus),
		Library: NewLibraryService(libraryDAO, validationUtil, eventBus),
		User:    NewUserService(userDAO, libraryDAO, validationUtil, eventBus),
		Users:   userDAO,
	}

	return services, nil
}
