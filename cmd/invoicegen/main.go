package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/joseph-ayodele/invoice-studio/constants"
	"github.com/joseph-ayodele/invoice-studio/internal/common"
	"github.com/joseph-ayodele/invoice-studio/internal/invoice"
	"github.com/joseph-ayodele/invoice-studio/internal/llm"
	"github.com/joseph-ayodele/invoice-studio/internal/llm/gemini"
	"github.com/joseph-ayodele/invoice-studio/internal/llm/openai"
	"github.com/joseph-ayodele/invoice-studio/internal/render"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	app := &cli.App{
		Name:  "invoicegen",
		Usage: "turn a free-text description into a structured invoice and render it as a PDF",
		Commands: []*cli.Command{
			extractCommand(logger),
			renderCommand(logger),
			templatesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func extractCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "extract a structured invoice record from free text",
		ArgsUsage: "\"bill Acme Corp $1500 for web work, due in 15 days\"",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "write the record JSON to `FILE` instead of stdout"},
		},
		Action: func(c *cli.Context) error {
			prompt := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if prompt == "" {
				return common.ErrEmptyPrompt
			}

			cfg := common.LoadConfig()
			if err := cfg.Validate(); err != nil {
				return err
			}
			svc := invoice.NewService(buildExtractor(cfg, logger), cfg.LLM.Timeout, logger)

			ctx, cancel := context.WithTimeout(context.Background(), cfg.LLM.Timeout)
			defer cancel()
			rec, err := svc.Extract(ctx, prompt)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return err
			}
			if path := c.String("out"); path != "" {
				return os.WriteFile(path, append(out, '\n'), 0o644)
			}
			fmt.Println(string(out))
			return nil
		},
	}
}

func renderCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "render a record JSON file into a PDF invoice",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "in", Aliases: []string{"i"}, Value: "-", Usage: "record JSON `FILE` ('-' for stdin)"},
			&cli.StringFlag{Name: "template", Aliases: []string{"t"}, Value: constants.TemplateIDs[0], Usage: "layout template"},
			&cli.StringFlag{Name: "accent", Value: constants.DefaultAccentColor, Usage: "accent color as #RRGGBB"},
			&cli.StringFlag{Name: "logo", Usage: "PNG or JPEG logo `FILE`"},
			&cli.StringFlag{Name: "out-dir", Aliases: []string{"d"}, Value: ".", Usage: "directory for the generated PDF"},
		},
		Action: func(c *cli.Context) error {
			rec, err := readRecord(c.String("in"))
			if err != nil {
				return err
			}
			rec.ApplyDefaults(time.Now())
			if err := rec.Validate(); err != nil {
				return err
			}

			template, err := render.ParseTemplate(c.String("template"))
			if err != nil {
				return err
			}

			var logo *render.Logo
			if path := c.String("logo"); path != "" {
				if _, ok := constants.AllowedLogoExtensions[constants.NormalizeExt(filepath.Ext(path))]; !ok {
					return fmt.Errorf("logo %s: unsupported extension", path)
				}
				data, rerr := os.ReadFile(path)
				if rerr != nil {
					return rerr
				}
				if logo, err = render.NewLogo(data); err != nil {
					return err
				}
			}

			cfg := common.LoadConfig()
			renderer := render.NewRenderer(render.Sender{
				Name:   cfg.Render.SenderName,
				Street: cfg.Render.SenderStreet,
				City:   cfg.Render.SenderCity,
			}, logger)

			pdf, err := renderer.Render(render.Request{
				Invoice:     rec,
				Logo:        logo,
				AccentColor: c.String("accent"),
				Template:    template,
			})
			if err != nil {
				return err
			}

			path := filepath.Join(c.String("out-dir"), render.Filename(rec.ClientName))
			if err := os.WriteFile(path, pdf, 0o644); err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

func templatesCommand() *cli.Command {
	return &cli.Command{
		Name:  "templates",
		Usage: "list the available layout templates",
		Action: func(*cli.Context) error {
			for _, id := range constants.TemplateIDs {
				fmt.Println(id)
			}
			return nil
		},
	}
}

func buildExtractor(cfg *common.Config, logger *slog.Logger) llm.FieldExtractor {
	if cfg.LLM.Provider == "openai" {
		return openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.APIKey,
			BaseURL:     cfg.LLM.BaseURL,
			Model:       cfg.LLM.Model,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger)
	}
	return gemini.NewClient(gemini.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
}

func readRecord(path string) (invoice.Record, error) {
	var rec invoice.Record
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("parse record: %w", err)
	}
	return rec, nil
}
