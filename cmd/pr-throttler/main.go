package main

import (
	"context"
	"flag"
	"net/http"

	"github.com/google/go-github/v71/github"
	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	prthrottler "github.com/mawinter69/pr-throttler"
)

var flagVerbose = flag.Bool("v", false, "be verbose")

func main() {
	flag.Parse()
	logger := logrus.New()
	if *flagVerbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	ctx := context.Background()

	cfg, err := prthrottler.NewConfig(logger)
	if err != nil {
		logger.Fatal(err)
	}

	var httpClient *http.Client
	if cfg.Token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(ctx, src)
	}
	client := github.NewClient(httpClient)
	gql := githubv4.NewClient(httpClient)

	decision, err := prthrottler.Run(ctx, logger, client, gql, cfg)
	if err != nil {
		logger.Fatal(err)
	}
	if err := decision.WriteOutputs(cfg.OutputPath); err != nil {
		logger.Fatal(err)
	}
}
