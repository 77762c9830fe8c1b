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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/httperr"
	"dirpx.dev/httperr/adapter"
	"dirpx.dev/httperr/apis"
	"dirpx.dev/httperr/codec"
	"dirpx.dev/httperr/httpx"
	"dirpx.dev/httperr/internal/config"
	"dirpx.dev/httperr/mapper"
	"dirpx.dev/httperr/status"
)

func newDecodeCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "decode <encoded>",
		Short: "Decode an encoded message into message, domain and status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := httperr.New(args[0], httperr.WithoutTrace())
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(adapter.ToView(e))
			}
			msg, domain, st := e.Parts()
			fmt.Fprintf(out, "message: %s\ndomain:  %s\nstatus:  %s\n", msg, domain, st)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the decoded parts as JSON")
	return cmd
}

func newEncodeCmd() *cobra.Command {
	var (
		code   int
		domain string
	)
	cmd := &cobra.Command{
		Use:   "encode [message...]",
		Short: "Encode a status, domain and message into one string",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := status.Status(code)
			if code != 0 && !st.Valid() {
				return fmt.Errorf("--status %d: %w", code, status.ErrStatusInvalid)
			}
			fmt.Fprintln(cmd.OutOrStdout(), codec.Encode(st, domain, strings.Join(args, " ")))
			return nil
		},
	}
	cmd.Flags().IntVar(&code, "status", 0, "HTTP status (100-999, default 500)")
	cmd.Flags().StringVar(&domain, "domain", "", "application domain (default \"unknown\")")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var variant string
	cmd := &cobra.Command{
		Use:   "render <encoded>",
		Short: "Print the HTTP response an encoded message renders to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := httpx.ParseVariant(variant)
			if err != nil {
				return err
			}
			resp := v.Build(httperr.New(args[0], httperr.WithoutTrace()))
			defer resp.Body.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", resp.Proto, resp.Status)
			keys := make([]string, 0, len(resp.Header))
			for k := range resp.Header {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				for _, val := range resp.Header[k] {
					fmt.Fprintf(out, "%s: %s\n", k, val)
				}
			}
			fmt.Fprintln(out)
			body := new(strings.Builder)
			if _, err := io.Copy(body, resp.Body); err != nil {
				return err
			}
			if body.Len() > 0 {
				fmt.Fprintln(out, body.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "string", "response variant: plain, string or json")
	return cmd
}

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <status>",
		Short: "Show how an HTTP status maps to a gRPC code and back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := status.Parse(args[0])
			if err != nil {
				return fmt.Errorf("status %q: %w", args[0], err)
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			m, err := newMapper(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.Explain(st))
			return nil
		},
	}
}

// loadConfig reads --config, or returns the defaults when it is unset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newMapper(cfg *config.Config) (apis.Mapper, error) {
	opts, err := cfg.Mapper.Options()
	if err != nil {
		return nil, err
	}
	return mapper.New(opts...)
}
