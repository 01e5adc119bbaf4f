package app

import (
	"insightdeck/internal/cache"
	"insightdeck/internal/repository"
)

// App bundles the data-layer dependencies shared across services.
type App struct {
	SurveyRepo   repository.SurveyRepo
	ResponseRepo repository.ResponseRepo
	ReportCache  cache.ReportCache
}
