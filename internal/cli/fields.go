package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-bootform/pkg/bootstrap"
	"github.com/goliatone/go-bootform/pkg/config"
)

func newFieldsCommand() *cobra.Command {
	var definition string
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the fields a definition renders",
		Long: `List every field referenced by static and custom controls together with
its id and parameter name. Fields rendered without a value are marked.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(definition)
			if err != nil {
				return fmt.Errorf("read definition: %w", err)
			}
			def, err := config.ParseDefinition(data, definition)
			if err != nil {
				return err
			}
			missing := def.MissingValues()
			out := cmd.OutOrStdout()
			for _, field := range def.Fields() {
				line := fmt.Sprintf("%s\t%s\t%s", field, bootstrap.FieldID(def.Object, field), bootstrap.FieldName(def.Object, field))
				if slices.Contains(missing, field) {
					line += "\t(missing)"
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&definition, "definition", "d", "", "Form definition file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("definition")
	return cmd
}
