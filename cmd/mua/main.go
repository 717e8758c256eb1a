// Command mua is the REPL front-end over the Mua core: a line-oriented
// loop identical to original_source/App.java's command surface, plus
// GREP/STATS, and an `import` subcommand for seeding a mailbox from a
// real mbox archive.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/ShadowGabbo/mua/config"
	"github.com/ShadowGabbo/mua/filter"
	"github.com/ShadowGabbo/mua/header"
	"github.com/ShadowGabbo/mua/importpipeline"
	"github.com/ShadowGabbo/mua/message"
	"github.com/ShadowGabbo/mua/mua"
	"github.com/ShadowGabbo/mua/uicard"
	"github.com/ShadowGabbo/mua/uitable"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mua <base_dir>",
		Short: "A line-oriented mail user agent over a directory of mailboxes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cmd, args[0])
			if err != nil {
				return err
			}
			logger := newLogger(cfg.LogLevel)
			return runREPL(cfg, logger)
		},
	}
	config.RegisterFlags(rootCmd)
	rootCmd.AddCommand(newImportCmd())

	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Printf("%v\n", err)
		os.Exit(1)
	}
}

func newLogger(logLevel string) *slog.Logger {
	level := new(slog.LevelVar)
	switch logLevel {
	case "debug":
		level.Set(slog.LevelDebug)
	case "warn":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	default:
		level.Set(slog.LevelInfo)
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

func runREPL(cfg config.Config, logger *slog.Logger) error {
	m, err := mua.Open(cfg.BaseDir)
	if err != nil {
		return fmt.Errorf("open mua: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		pterm.Print(m.Prompt())
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "LSM":
			pterm.Println(m.String())
		case "MBOX":
			handleMbox(m, fields)
		case "LSE":
			handleLSE(m)
		case "READ":
			handleRead(m, fields)
		case "COMPOSE":
			handleCompose(m, scanner)
		case "DELETE":
			handleDelete(m, fields)
		case "GREP":
			handleGrep(m, fields)
		case "STATS":
			handleStats(m)
		case "#":
			continue
		case "EXIT":
			return nil
		default:
			pterm.Error.Println("Unknown command")
		}
	}
	return nil
}

func handleMbox(m *mua.Mua, fields []string) {
	if len(fields) < 2 {
		pterm.Error.Println("Unknown command")
		return
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		pterm.Error.Println("Unknown command")
		return
	}
	if err := m.Select(index); err != nil {
		pterm.Error.Println("Unknown command")
	}
}

func handleLSE(m *mua.Mua) {
	box, err := m.Current()
	if err != nil {
		pterm.Error.Println("Unknown command")
		return
	}
	pterm.Println(box.String())
}

func handleRead(m *mua.Mua, fields []string) {
	if len(fields) < 2 {
		pterm.Error.Println("Unknown command")
		return
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		pterm.Error.Println("Unknown command")
		return
	}
	msg, err := m.ReadMessage(index)
	if err != nil {
		pterm.Error.Println("Unknown command")
		return
	}
	pterm.Println(renderCard(msg))
}

func handleDelete(m *mua.Mua, fields []string) {
	if len(fields) < 2 {
		pterm.Error.Println("Unknown command")
		return
	}
	index, err := strconv.Atoi(fields[1])
	if err != nil {
		pterm.Error.Println("Unknown command")
		return
	}
	if err := m.DeleteMessage(index); err != nil {
		pterm.Error.Println("Unknown command")
	}
}

func handleGrep(m *mua.Mua, fields []string) {
	if len(fields) < 2 {
		pterm.Error.Println("Unknown command")
		return
	}
	box, err := m.Current()
	if err != nil {
		pterm.Error.Println("Unknown command")
		return
	}
	f, err := filter.New(strings.Join(fields[1:], " "))
	if err != nil {
		pterm.Error.Println("Unknown command")
		return
	}

	rows := []uitable.Row{}
	for i, msg := range box.Messages() {
		if !f.Allows(msg.Encode()) {
			continue
		}
		sender, _ := msg.Sender()
		subject, _ := msg.Subject()
		rows = append(rows, uitable.Row{
			Index:   i + 1,
			Columns: []string{sender.Address().String(), subject.Text()},
		})
	}
	pterm.Println(uitable.Render([]string{"From", "Subject"}, rows))
}

func handleStats(m *mua.Mua) {
	mailboxes := m.Mailboxes()
	total := 0
	rows := make([]uitable.Row, 0, len(mailboxes))
	for i, mb := range mailboxes {
		total += mb.Count()
		name := mb.Name()
		if name == "" {
			name = "(unnamed)"
		}
		rows = append(rows, uitable.Row{
			Index:   i + 1,
			Columns: []string{name, strconv.Itoa(mb.Count())},
		})
	}
	pterm.Info.Printf("Mailboxes: %d, Messages: %d\n", len(mailboxes), total)
	pterm.Println(uitable.Render([]string{"Name", "Messages"}, rows))
}

func handleCompose(m *mua.Mua, scanner *bufio.Scanner) {
	pterm.Print("From: ")
	if !scanner.Scan() {
		pterm.Error.Println("Unknown command")
		return
	}
	sender, err := header.DecodeSender(strings.TrimSpace(scanner.Text()))
	if err != nil {
		pterm.Error.Println("Unknown command")
		return
	}

	pterm.Print("To: ")
	if !scanner.Scan() {
		pterm.Error.Println("Unknown command")
		return
	}
	recipients, err := header.DecodeRecipients(strings.TrimSpace(scanner.Text()))
	if err != nil {
		pterm.Error.Println("Unknown command")
		return
	}

	pterm.Print("Subject: ")
	if !scanner.Scan() {
		pterm.Error.Println("Unknown command")
		return
	}
	subject, err := header.DecodeSubject(strings.TrimSpace(scanner.Text()))
	if err != nil {
		pterm.Error.Println("Unknown command")
		return
	}

	pterm.Print("Date: ")
	if !scanner.Scan() {
		pterm.Error.Println("Unknown command")
		return
	}
	date, err := header.DecodeDate(strings.TrimSpace(scanner.Text()))
	if err != nil {
		pterm.Error.Println("Unknown command")
		return
	}

	textBody := readUntilDot("Text body (. to end): ", scanner)
	htmlBody := readUntilDot("Html body (. to end): ", scanner)

	var msg message.Message
	switch {
	case textBody == "" && htmlBody == "":
		pterm.Error.Println("Unknown command")
		return
	case textBody != "" && htmlBody != "":
		msg, err = message.NewMultipart(sender.Address(), recipients.Addresses(), subject.Text(), date.Time(), textBody, htmlBody)
	case textBody != "":
		msg, err = message.NewSinglepartText(sender.Address(), recipients.Addresses(), subject.Text(), date.Time(), textBody)
	default:
		msg, err = message.NewSinglepartHTML(sender.Address(), recipients.Addresses(), subject.Text(), date.Time(), htmlBody)
	}
	if err != nil {
		pterm.Error.Println("Unknown command")
		return
	}

	if err := m.SaveMessage(msg); err != nil {
		pterm.Error.Println("Unknown command")
		return
	}
	pterm.Success.Println("Message saved.")
}

func readUntilDot(prompt string, scanner *bufio.Scanner) string {
	pterm.Print(prompt)
	var sb strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if line == "." {
			break
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderCard(msg message.Message) string {
	var fields []uicard.Field
	if s, err := msg.Sender(); err == nil {
		fields = append(fields, uicard.Field{Label: "From", Value: s.Address().String()})
	}
	if r, err := msg.Recipients(); err == nil {
		names := make([]string, 0, len(r.Addresses()))
		for _, a := range r.Addresses() {
			names = append(names, a.String())
		}
		fields = append(fields, uicard.Field{Label: "To", Value: strings.Join(names, ", ")})
	}
	if subj, err := msg.Subject(); err == nil {
		fields = append(fields, uicard.Field{Label: "Subject", Value: subj.Text()})
	}
	if d, err := msg.Date(); err == nil {
		fields = append(fields, uicard.Field{Label: "Date", Value: d.Time().String()})
	}

	body := ""
	parts := msg.Parts()
	if msg.IsMultipart() && len(parts) == 3 {
		body = parts[1].Body() + "\n---\n" + parts[2].Body()
	} else if len(parts) > 0 {
		body = parts[0].Body()
	}
	return uicard.Render(fields, body)
}

func newImportCmd() *cobra.Command {
	var mailbox string
	cmd := &cobra.Command{
		Use:   "import <archive.mbox>",
		Short: "Import a legacy mbox archive into a mailbox",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseDir, err := cmd.Flags().GetString("base-dir")
			if err != nil {
				return err
			}
			logLevel, err := cmd.InheritedFlags().GetString("log-level")
			if err != nil {
				logLevel = "info"
			}

			m, err := mua.Open(baseDir)
			if err != nil {
				return fmt.Errorf("open mua: %w", err)
			}
			if mailbox == "" {
				return fmt.Errorf("--mailbox is required")
			}
			if err := selectByName(m, mailbox); err != nil {
				return err
			}

			stateDir := filepath.Join(baseDir, mailbox, ".import-state")
			tracker, err := importpipeline.NewFileTracker(stateDir)
			if err != nil {
				return err
			}
			defer tracker.Close()

			logger := newLogger(logLevel)
			summary, err := importpipeline.Run(cmd.Context(), importpipeline.Options{
				ArchivePath: args[0],
				StateDir:    stateDir,
				ShowBar:     logLevel == "info",
			}, tracker, m, logger)
			importpipeline.PrintSummary(summary)
			return err
		},
	}
	cmd.Flags().String("base-dir", "", "Base directory holding the mailboxes")
	cmd.Flags().StringVar(&mailbox, "mailbox", "", "Name of the mailbox to import into")
	_ = cmd.MarkFlagRequired("base-dir")
	_ = cmd.MarkFlagRequired("mailbox")
	return cmd
}

func selectByName(m *mua.Mua, name string) error {
	for i, mb := range m.Mailboxes() {
		if mb.Name() == name {
			return m.Select(i + 1)
		}
	}
	return fmt.Errorf("no such mailbox: %s", name)
}
