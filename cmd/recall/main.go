// recall is a small CLI for querying the file-access log directly,
// without running the HTTP service.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	goflags "github.com/jessevdk/go-flags"
	"github.com/zyronlabs/recall/db/logstore"
	"github.com/zyronlabs/recall/logger"
	"github.com/zyronlabs/recall/services/finder"
)

type options struct {
	Log   string `long:"log" description:"Path to the tracker's JSON activity log" default:"file_activity_log.json"`
	Limit int    `long:"limit" description:"Maximum number of results" default:"5"`
	Paths bool   `long:"paths" description:"Include full file paths in the output"`

	Args struct {
		Query []string `positional-arg-name:"query" required:"yes" description:"Natural-language query, e.g. 'that PDF from yesterday afternoon'"`
	} `positional-args:"yes"`
}

func main() {
	var opts options

	parser := goflags.NewParser(&opts, goflags.Default)
	parser.Name = "recall"
	parser.LongDescription = "Find files you recently worked on, by natural-language time, type and keyword."

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok && flagsErr.Type == goflags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	query := strings.Join(opts.Args.Query, " ")

	log := logger.New()
	service := finder.New(log, logstore.NewFileStore(log, opts.Log))
	results := service.FindFilesFromQuery(query, opts.Limit)

	fmt.Println(finder.FormatResults(results, opts.Paths, time.Now()))
}
