package main

import (
	"context"
	"portfoliotracker/api"
	"portfoliotracker/cmd"
	"portfoliotracker/internal/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
)

type lambdaHandler struct {
	ginLambda *ginadapter.GinLambda
}

func newLambdaHandler(apiHandler *api.ApiHandler) lambdaHandler {
	return lambdaHandler{
		ginLambda: ginadapter.New(apiHandler.InitializeRouterEngine()),
	}
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.FromContext(ctx).Infow("lambda request", "method", req.HTTPMethod, "path", req.Path)
	return m.ginLambda.ProxyWithContext(ctx, req)
}

// The scheduler is not started here; cron runs in the long lived server.
func main() {
	lg := logger.New()
	cfg, err := cmd.LoadConfig("")
	if err != nil {
		lg.Fatal(err)
	}
	deps, err := cmd.InitializeDependencies(cfg)
	if err != nil {
		lg.Fatal(err)
	}
	defer cmd.CloseDependencies(deps)

	lambda.Start(newLambdaHandler(deps.ApiHandler).Handler)
}
