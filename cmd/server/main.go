package main

import (
	"os"

	"github.com/anurag-deore/ai-monitoring-analytics/internal/app"
)

// @title           Insight Chat API
// @version         1.0
// @description     Conversational analytics front-end: ask questions, browse chat history and create reports and dashboards.
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
