// Package main provides the dirq binary entry point. It compiles
// method-name descriptors against a YAML entity descriptor without
// touching a directory server, which makes it handy for checking what
// filter a repository method will send.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/syssam/dirq/filter"
	"github.com/syssam/dirq/mapping"
	"github.com/syssam/dirq/naming"
	"github.com/syssam/dirq/query"
	"github.com/syssam/dirq/schema"
)

const appName = "dirq"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Derive directory search filters from repository method names",
		Long: `dirq derives LDAP search filters from repository-style method-name
descriptors. Given an entity descriptor (YAML) and a method name such as
"findByLastnameAndFirstname", it prints the compiled filter and the
assembled query descriptor.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			lvl, err := zerolog.ParseLevel(strings.ToLower(logLevel))
			if err != nil {
				return fmt.Errorf("invalid log level %q", logLevel)
			}
			zerolog.SetGlobalLevel(lvl)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(compileCmd())
	cmd.AddCommand(validateCmd())
	return cmd
}

func compileCmd() *cobra.Command {
	var (
		schemaPath string
		scopeName  string
		ignore     bool
	)

	cmd := &cobra.Command{
		Use:   "compile <descriptor> [args...]",
		Short: "Compile a method-name descriptor into a filter and query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zerolog.New(os.Stderr).With().Timestamp().Str("component", "compile").Logger()

			entity, err := schema.DecodeFile(schemaPath)
			if err != nil {
				return err
			}
			md, err := mapping.Resolve(entity)
			if err != nil {
				return err
			}
			log.Debug().Str("entity", md.Entity()).Msg("metadata resolved")

			d, err := naming.Parse(args[0], md)
			if err != nil {
				return err
			}
			values := make([]any, 0, len(args)-1)
			for _, a := range args[1:] {
				values = append(values, a)
			}
			bound, err := d.Bind(values...)
			if err != nil {
				return err
			}
			f, err := filter.Compile(bound, md)
			if err != nil {
				return err
			}

			scope, err := parseScope(scopeName)
			if err != nil {
				return err
			}
			policy := query.PolicyReject
			if ignore {
				policy = query.PolicyIgnore
			}
			q, err := query.NewAssembler(query.WithPolicy(policy)).Assemble(md, f, query.Params{Scope: scope})
			if err != nil {
				return err
			}
			log.Debug().Str("id", q.ID.String()).Msg("query assembled")

			fmt.Fprintf(cmd.OutOrStdout(), "base:   %s\nscope:  %s\nfilter: %s\n", q.Base, q.Scope, q.Filter)
			return nil
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "entity.yaml", "Entity descriptor file (YAML)")
	cmd.Flags().StringVar(&scopeName, "scope", "subtree", "Search scope (base, one, subtree)")
	cmd.Flags().BoolVar(&ignore, "ignore-unsupported", false, "Drop pagination/sorting parameters instead of rejecting them")
	return cmd
}

func validateCmd() *cobra.Command {
	var schemaPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an entity descriptor file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entity, err := schema.DecodeFile(schemaPath)
			if err != nil {
				return err
			}
			md, err := mapping.Resolve(entity)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d attributes, %d dn components, base %q\n",
				md.Entity(), len(md.Attributes()), len(md.DNAttributes()), md.Base())
			return nil
		},
	}
	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "entity.yaml", "Entity descriptor file (YAML)")
	return cmd
}

func parseScope(s string) (query.Scope, error) {
	switch strings.ToLower(s) {
	case "base":
		return query.ScopeBase, nil
	case "one", "onelevel":
		return query.ScopeOneLevel, nil
	case "subtree", "sub":
		return query.ScopeSubtree, nil
	default:
		return 0, fmt.Errorf("unknown scope %q", s)
	}
}
