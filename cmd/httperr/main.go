/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command httperr inspects encoded error messages and runs a small demo
// server that reports failures with httperr.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "httperr",
		Short: "Inspect and render status:domain:message errors",
		Long: `httperr decodes, encodes and renders error messages of the form
"<status>:<domain>:<message>", explains their gRPC mapping, and serves a demo
HTTP/gRPC server that reports failures with them.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "configuration file (.yaml, .yml or .toml)")

	root.AddCommand(
		newDecodeCmd(),
		newEncodeCmd(),
		newRenderCmd(),
		newExplainCmd(),
		newServeCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
