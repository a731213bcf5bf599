package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/JimBobSquarePants/Cruncher-sub001/internal/core/domain"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newBundleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle [identifiers...]",
		Short: "Combine the named resources into a single output",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			kindFlag, _ := cmd.Flags().GetString("kind")
			minify, _ := cmd.Flags().GetBool("minify")
			out, _ := cmd.Flags().GetString("out")

			kind, err := resolveKind(kindFlag, args)
			if err != nil {
				return err
			}

			output, err := c.app.Bundle(cmd.Context(), args, kind, minify)
			if err != nil {
				return err
			}

			if out != "" {
				return os.WriteFile(out, []byte(output), domain.FilePerm)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
	cmd.Flags().StringP("kind", "k", "", "Target kind: css or js (inferred from the first identifier when empty)")
	cmd.Flags().BoolP("minify", "m", false, "Minify each resource before combining")
	cmd.Flags().StringP("out", "o", "", "Write the bundle to a file instead of stdout")
	return cmd
}

// resolveKind maps the --kind flag, or the first identifier's extension when
// the flag is empty, to a target kind.
func resolveKind(flag string, identifiers []string) (domain.TargetKind, error) {
	switch strings.ToLower(flag) {
	case "css":
		return domain.KindStyle, nil
	case "js":
		return domain.KindScript, nil
	case "":
	default:
		return "", zerr.With(domain.ErrUnknownTargetKind, "kind", flag)
	}

	switch {
	case strings.HasSuffix(identifiers[0], ".css"):
		return domain.KindStyle, nil
	case strings.HasSuffix(identifiers[0], ".js"):
		return domain.KindScript, nil
	}
	return "", zerr.With(domain.ErrUnknownTargetKind, "identifier", identifiers[0])
}
