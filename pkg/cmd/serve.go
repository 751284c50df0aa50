package cmd

import (
	"fmt"
	"net/http"
	"os"

	cmdutil "github.com/AbS224/Intent-coding/pkg/cmd/util"
	"github.com/AbS224/Intent-coding/pkg/ingress"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve [flags]",
	Short: "start the ingress facade's HTTP server.",
	Long: `Starts the three-route HTTP facade (GET /, POST
/api/requirements, GET /api/ast) over a single process-wide current AST.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr := cmdutil.GetString(cmd, "addr")

		server := ingress.NewServer()

		log.Infof("serve: listening on %s", addr)

		if err := http.ListenAndServe(addr, server); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":3000", "address to listen on")
}
