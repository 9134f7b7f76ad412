// Command digestctl runs the digest pipeline's operations once from the
// command line and inspects the job queue.
package main

import (
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/urfave/cli"
)

func main() {
	app := cli.App{
		Name:      "digestctl",
		HelpName:  "digestctl",
		Usage:     "operate the day-end digest pipeline",
		UsageText: "digestctl <command> [arguments...]",
		Commands: []cli.Command{
			{
				Name:   "run-pass",
				Usage:  "enqueue digest jobs for firms inside the scheduling window",
				Action: runPass,
				Flags:  runPassFlags,
			},
			{
				Name:   "run-batch",
				Usage:  "claim and deliver one batch of due digest jobs",
				Action: runBatch,
			},
			{
				Name:   "jobs",
				Usage:  "list a firm's digest jobs for one local date",
				Action: listJobs,
				Flags:  firmDateFlags,
			},
			{
				Name:   "firm-status",
				Usage:  "count a firm's digest jobs by status for one local date",
				Action: firmStatus,
				Flags:  firmDateFlags,
			},
			{
				Name:   "failed",
				Usage:  "list jobs that failed and will not be retried",
				Action: listFailed,
				Flags:  failedFlags,
			},
			{
				Name:   "migrate",
				Usage:  "apply database migrations with atlas",
				Action: migrate,
				Flags:  migrateFlags,
			},
			{
				Name:   "admin-token",
				Usage:  "issue a bearer token for the admin API",
				Action: adminToken,
				Flags:  adminTokenFlags,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "digestctl:", err)
		os.Exit(1)
	}
}
