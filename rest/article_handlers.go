package rest

import (
	"net/http"
	"strconv"

	"feedhub/config"
	"feedhub/di"
	"feedhub/domain"
	custommiddleware "feedhub/middleware"

	"github.com/labstack/echo/v4"
)

func registerArticleRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config, authMiddleware *custommiddleware.AuthMiddleware) {
	articles := v1.Group("/articles", authMiddleware.RequireAuth())

	articles.GET("", handleGetTimeline(container, cfg))
	articles.GET("/saved", handleGetSavedArticles(container))
	articles.POST("/state", handleUpdateArticleState(container))
	articles.POST("/state/bulk", handleBulkArticleStates(container))
	articles.POST("/remove", handleRemoveArticle(container))
}

// handleGetTimeline serves one freshly aggregated timeline page. Missing
// paging parameters fall back to configured defaults; malformed ones are a
// client error.
func handleGetTimeline(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := ownerID(c)
		if err != nil {
			return handleError(c, err, "get_timeline")
		}

		page := 1
		if raw := c.QueryParam("page"); raw != "" {
			page, err = strconv.Atoi(raw)
			if err != nil {
				return handleValidationError(c, "invalid page parameter", "page", raw)
			}
		}

		pageSize := cfg.Aggregate.DefaultPageSize
		if raw := c.QueryParam("pageSize"); raw != "" {
			pageSize, err = strconv.Atoi(raw)
			if err != nil {
				return handleValidationError(c, "invalid pageSize parameter", "pageSize", raw)
			}
		}

		items, err := container.FetchTimelineUsecase.Execute(c.Request().Context(), owner, page, pageSize)
		if err != nil {
			return handleError(c, err, "get_timeline")
		}

		return c.JSON(http.StatusOK, ArticlesResponse{
			Articles: items,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

func handleGetSavedArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := ownerID(c)
		if err != nil {
			return handleError(c, err, "get_saved_articles")
		}

		saved, err := container.ArticleStateUsecase.ListSavedArticles(c.Request().Context(), owner)
		if err != nil {
			return handleError(c, err, "get_saved_articles")
		}

		return c.JSON(http.StatusOK, saved)
	}
}

func handleUpdateArticleState(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := ownerID(c)
		if err != nil {
			return handleError(c, err, "update_article_state")
		}

		var req UpdateStateRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}

		row, err := container.ArticleStateUsecase.UpdateState(c.Request().Context(), owner, domain.StateChange{
			Link:      req.Link,
			FeedID:    req.FeedID,
			Title:     req.Title,
			Published: req.Published,
			Read:      req.Read,
			Saved:     req.Saved,
		})
		if err != nil {
			return handleError(c, err, "update_article_state")
		}

		return c.JSON(http.StatusOK, row)
	}
}

func handleBulkArticleStates(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := ownerID(c)
		if err != nil {
			return handleError(c, err, "bulk_article_states")
		}

		var req BulkStateRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}

		states, err := container.ArticleStateUsecase.BulkGetStates(c.Request().Context(), owner, req.Links)
		if err != nil {
			return handleError(c, err, "bulk_article_states")
		}

		return c.JSON(http.StatusOK, BulkStateResponse{States: states})
	}
}

func handleRemoveArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		owner, err := ownerID(c)
		if err != nil {
			return handleError(c, err, "remove_article")
		}

		var req RemoveArticleRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "invalid request body", "body", nil)
		}

		if err := container.RemoveArticleUsecase.Execute(c.Request().Context(), owner, req.Link); err != nil {
			return handleError(c, err, "remove_article")
		}

		return c.JSON(http.StatusOK, MessageResponse{Message: "article removed"})
	}
}
