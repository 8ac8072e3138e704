package commands

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/pslcheck/cli/internal/config"
	"github.com/satishbabariya/pslcheck/cli/internal/ui"
)

type initOptions struct {
	dir        string
	datasource string
	examples   bool
	yes        bool
}

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	opts := initOptions{}

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a starter schema and .pslcheck.yaml",
		Long:  "Create a Postgres schema with example indexes and a pslcheck configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.dir = "."
			if len(args) > 0 {
				opts.dir = args[0]
			}
			if !opts.yes {
				if err := askInitOptions(&opts); err != nil {
					return err
				}
			}
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.datasource, "datasource", "db", "Name of the datasource block")
	cmd.Flags().BoolVar(&opts.examples, "examples", true, "Add example GiST and GIN indexes")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the prompts and use the flag values")

	return cmd
}

func askInitOptions(opts *initOptions) error {
	questions := []*survey.Question{
		{
			Name:     "datasource",
			Prompt:   &survey.Input{Message: "Datasource name:", Default: opts.datasource},
			Validate: survey.Required,
		},
		{
			Name:   "examples",
			Prompt: &survey.Confirm{Message: "Add example GiST and GIN indexes?", Default: opts.examples},
		},
	}

	answers := struct {
		Datasource string
		Examples   bool
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return err
	}
	opts.datasource = answers.Datasource
	opts.examples = answers.Examples
	return nil
}

var schemaTemplate = template.Must(template.New("schema").Parse(`datasource {{.Datasource}} {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

model User {
  id      Int      @id @default(autoincrement())
  email   String   @unique
  name    String?
{{- if .Examples}}
  address String?  @{{.Datasource}}.Inet
  tags    String[]
  profile Json?    @{{.Datasource}}.JsonB

  @@index([address(ops: InetOps)], type: Gist)
  @@index([tags], type: Gin)
  @@index([profile(ops: JsonbPathOps)], type: Gin)
{{- end}}
}
`))

func runInit(opts initOptions) error {
	schemaPath := filepath.Join(opts.dir, "schema.prisma")
	if exists, _ := afero.Exists(config.AppFs, schemaPath); exists {
		return fmt.Errorf("schema file already exists: %s", schemaPath)
	}

	var schema bytes.Buffer
	if err := schemaTemplate.Execute(&schema, struct {
		Datasource string
		Examples   bool
	}{opts.datasource, opts.examples}); err != nil {
		return err
	}

	if err := config.AppFs.MkdirAll(opts.dir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	if err := afero.WriteFile(config.AppFs, schemaPath, schema.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to create schema file: %w", err)
	}
	ui.PrintSuccess("Created schema file: %s", schemaPath)

	if err := config.Save(opts.dir, &config.Config{
		SchemaPath:  "schema.prisma",
		Parallelism: 1,
		Format:      config.FormatPretty,
	}); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	ui.PrintSuccess("Created config file: %s", filepath.Join(opts.dir, ".pslcheck.yaml"))

	ui.PrintInfo("Run `pslcheck validate -C %s` to check the schema", opts.dir)
	return nil
}
