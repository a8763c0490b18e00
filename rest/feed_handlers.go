package rest

import (
	"net/http"

	"feedhub/di"
	"feedhub/domain"
	custommiddleware "feedhub/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// recommendedFeeds is the curated starter list shown to owners with no
// subscriptions yet.
var recommendedFeeds = []domain.RecommendedFeed{
	{URL: "https://hnrss.org/frontpage", Title: "Hacker News"},
	{URL: "https://feeds.arstechnica.com/arstechnica/index", Title: "Ars Technica"},
	{URL: "https://www.theverge.com/rss/index.xml", Title: "The Verge"},
	{URL: "https://blog.golang.org/feed.atom", Title: "The Go Blog"},
	{URL: "https://lwn.net/headlines/rss", Title: "LWN.net"},
}

func registerFeedRoutes(v1 *echo.Group, container *di.ApplicationComponents, authMiddleware *custommiddleware.AuthMiddleware) {
	feeds := v1.Group("/feeds", authMiddleware.RequireAuth())

	feeds.GET("", handleListFeeds(container))
	feeds.POST("", handleRegisterFeed(container))
	feeds.DELETE("/:id", handleDeleteFeed(container))
	feeds.GET("/recommended", handleRecommendedFeeds())
}

func handleListFeeds(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := ownerID(c)
		if err != nil {
			return handleError(c, err, "list_feeds")
		}

		feeds, err := container.SubscriptionUsecase.ListFeeds(c.Request().Context(), owner)
		if err != nil {
			return handleError(c, err, "list_feeds")
		}

		response := make([]FeedResponse, 0, len(feeds))
		for _, feed := range feeds {
			response = append(response, toFeedResponse(feed))
		}

		return c.JSON(http.StatusOK, response)
	}
}

func handleRegisterFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := ownerID(c)
		if err != nil {
			return handleError(c, err, "register_feed")
		}

		var req RegisterFeedRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}

		feed, err := container.RegisterFeedUsecase.Execute(c.Request().Context(), owner, req.URL, req.Title)
		if err != nil {
			return handleError(c, err, "register_feed")
		}

		return c.JSON(http.StatusCreated, toFeedResponse(feed))
	}
}

func handleDeleteFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := ownerID(c)
		if err != nil {
			return handleError(c, err, "delete_feed")
		}

		feedID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return handleValidationError(c, "invalid feed id", "id", c.Param("id"))
		}

		if err := container.SubscriptionUsecase.DeleteFeed(c.Request().Context(), owner, feedID); err != nil {
			return handleError(c, err, "delete_feed")
		}

		return c.NoContent(http.StatusNoContent)
	}
}

func handleRecommendedFeeds() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, recommendedFeeds)
	}
}
