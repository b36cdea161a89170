package main

import (
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/dharmasatrya/fareparse/internal/aggregator"
	"github.com/dharmasatrya/fareparse/internal/config"
	"github.com/dharmasatrya/fareparse/internal/parser"
	"github.com/dharmasatrya/fareparse/internal/ranking"
	"github.com/dharmasatrya/fareparse/internal/service"
)

var svc *service.Service

func init() {
	cfg := config.Load()
	loader := aggregator.NewLoader(nil, aggregator.Config{
		Timeout: cfg.LoadTimeout,
		Parser:  parser.Options{Strict: cfg.StrictOptions},
	})
	svc = service.New(loader, ranking.Weights{Time: cfg.TimeWeight, Cost: cfg.CostWeight}, cfg.FetchTimeout)
}

func main() {
	lambda.Start(HandleRequest)
}
