package main

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/felosidev/avatar-bot/internal/command"
	"github.com/felosidev/avatar-bot/internal/config"
	"github.com/felosidev/avatar-bot/internal/discord"
	"github.com/felosidev/avatar-bot/internal/version"
)

type CmdInfo struct {
	Name        string
	Description string
	Category    string
}

func main() {
	if err := run("README.md.tmpl", "README.md"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(tmplPath, outPath string) error {
	// Declaration only: no session, stats or HTTP client are needed.
	registry := discord.NewRegistry(&config.Config{ProfilePicEnabled: true}, nil, nil)

	tmplData, err := os.ReadFile(tmplPath)
	if err != nil {
		return err
	}

	tmpl, err := template.New("readme").Parse(string(tmplData))
	if err != nil {
		return err
	}

	data := map[string]any{
		"AppName":         version.AppName,
		"AppDescription":  version.AppDescription,
		"CommandSections": renderSections(registry),
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, data); err != nil {
		return err
	}

	return os.WriteFile(outPath, out.Bytes(), 0644)
}

// renderSections lists commands per category, categories in first-seen order.
func renderSections(registry *command.Registry) string {
	var order []string
	sections := make(map[string][]CmdInfo)
	for _, cmd := range registry.All() {
		info := CmdInfo{
			Name:        "/" + cmd.Name(),
			Description: cmd.Description(),
			Category:    cmd.Category(),
		}
		if _, ok := sections[info.Category]; !ok {
			order = append(order, info.Category)
		}
		sections[info.Category] = append(sections[info.Category], info)
	}

	var buf bytes.Buffer
	for _, cat := range order {
		fmt.Fprintf(&buf, "### %s\n\n", cat)
		for _, c := range sections[cat] {
			fmt.Fprintf(&buf, "* **`%s`**\n  %s\n\n", c.Name, c.Description)
		}
	}
	return buf.String()
}
