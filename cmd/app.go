// Package cmd implements the hft CLI to track hedge fund portfolios from
// their SEC 13F filings.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/deividi86/hedge-fund-tracker/edgar"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

const rapidAPIKeyEnv = "RAPIDAPI_KEY"

const keyRemediation = "Set the " + rapidAPIKeyEnv + " environment variable, add it to a .env file, or use -key.\n" +
	"Get your key at https://rapidapi.com/dapdev-dapdev-default/api/sec-edgar-financial-data-api"

var apiKeyFlag = flag.String("key", "", "RapidAPI key for the SEC EDGAR Financial Data API.\n"+
	" The "+rapidAPIKeyEnv+" environment variable and a .env file take precedence over this flag.")

// Commands lists all subcommands, in the order they show in help.
var Commands = []subcommands.Command{
	&holdingsCmd{},
	&filingsCmd{},
	&searchCmd{},
	&listFundsCmd{},
	&assistCmd{},
	&topicCmd{},
}

// MissingCredentialError is raised before any network call when no API key
// can be found anywhere.
type MissingCredentialError struct{}

func (*MissingCredentialError) Error() string {
	return "no API key provided.\n" + keyRemediation
}

// apiKey resolves the credential: environment variable first, then a .env
// file in the working directory, then the -key flag.
func apiKey() (string, error) {
	if key := os.Getenv(rapidAPIKeyEnv); key != "" {
		return key, nil
	}
	if env, err := godotenv.Read(); err == nil {
		if key := env[rapidAPIKeyEnv]; key != "" {
			return key, nil
		}
	}
	if *apiKeyFlag != "" {
		return *apiKeyFlag, nil
	}
	return "", &MissingCredentialError{}
}

// newClient builds the API client, failing fast when the credential is
// missing.
func newClient() (*edgar.Client, error) {
	key, err := apiKey()
	if err != nil {
		return nil, err
	}
	return edgar.NewClient(key), nil
}
