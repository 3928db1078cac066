package cmd

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"text/template"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/spf13/cobra"

	"github.com/stackprobe/stackprobe-cli/internal/detect"
	consts "github.com/stackprobe/stackprobe-cli/internal/shared/constants"
	"github.com/stackprobe/stackprobe-cli/internal/store"
)

const markdownTemplatePath = "templates/report.md"

//go:embed templates/report.md
var reportTemplateFS embed.FS

var markdownTemplateFuncs = template.FuncMap{
	"join":  strings.Join,
	"upper": strings.ToUpper,
	"title": titleCase,
}

var markdownReportTemplate = template.Must(
	template.New("report.md").Funcs(markdownTemplateFuncs).ParseFS(reportTemplateFS, markdownTemplatePath),
)

var reportCmd = &cobra.Command{
	Use:   "report [host]",
	Short: "Render a saved analysis report (table, json, md, or pdf)",
	RunE: func(cmd *cobra.Command, args []string) error {
		list, _ := cmd.Flags().GetBool("list")
		file, _ := cmd.Flags().GetString("file")
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		repo, err := store.NewRepository(resultsDir)
		if err != nil {
			return err
		}

		if list {
			return printReportList(repo)
		}

		var stored *store.StoredReport
		switch {
		case file != "":
			stored, err = repo.Load(file)
		case len(args) == 1:
			stored, err = repo.Latest(store.HostLabel(args[0]))
		default:
			return fmt.Errorf("pass a host (or --file / --list)")
		}
		if err != nil {
			return err
		}

		format = strings.ToLower(format)
		switch format {
		case "table":
			printReportTable(stored)
			return nil
		case "json":
			data, err := json.MarshalIndent(stored, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal report: %w", err)
			}
			return emitReport(output, append(data, '\n'))
		case "md":
			content, err := generateMarkdownReport(buildReportTemplateData(stored))
			if err != nil {
				return fmt.Errorf("failed to generate report: %w", err)
			}
			return emitReport(output, []byte(content))
		case "pdf":
			pdfBytes, err := generatePDFReportBytes(buildReportTemplateData(stored))
			if err != nil {
				return fmt.Errorf("failed to generate PDF report: %w", err)
			}
			if output == "" {
				output = filepath.Join(resultsDir, stored.Host+"-report.pdf")
			}
			if err := os.WriteFile(output, pdfBytes, consts.DefaultFilePerm); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			fmt.Printf("Report generated: %s\n", output)
			return nil
		default:
			return fmt.Errorf("invalid format: %s (must be table, json, md, or pdf)", format)
		}
	},
}

func init() {
	reportCmd.Flags().Bool("list", false, "list saved reports")
	reportCmd.Flags().String("file", "", "load a specific saved report by file name")
	reportCmd.Flags().String("format", "table", "output format: table, json, md, pdf")
	reportCmd.Flags().String("output", "", "write output to a file instead of stdout")
}

func emitReport(output string, content []byte) error {
	if output == "" {
		_, err := os.Stdout.Write(content)
		return err
	}
	if err := os.WriteFile(output, content, consts.DefaultFilePerm); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Printf("Report generated: %s\n", output)
	return nil
}

func printReportList(repo *store.Repository) error {
	entries, err := repo.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("%s no saved reports under %s\n", colorWarn("!"), resultsDir)
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "HOST\tGENERATED\tFILE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Host, e.GeneratedAt.Format(time.RFC3339), e.Name)
	}
	return w.Flush()
}

// categorySection pairs a category name with its findings for rendering.
type categorySection struct {
	Name     string
	Findings []detect.Finding
}

// reportTemplateData is the render model shared by markdown and PDF output.
type reportTemplateData struct {
	Host        string
	GeneratedAt string
	Report      *detect.AnalysisReport
	Categories  []categorySection
}

func buildReportTemplateData(stored *store.StoredReport) reportTemplateData {
	report := stored.Report

	categories := make([]categorySection, 0, len(report.FindingsByCategory))
	for cat, findings := range report.FindingsByCategory {
		categories = append(categories, categorySection{Name: string(cat), Findings: findings})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })

	generatedAt := ""
	if !stored.GeneratedAt.IsZero() {
		generatedAt = stored.GeneratedAt.Format("Jan 02 2006 15:04 MST")
	}

	return reportTemplateData{
		Host:        stored.Host,
		GeneratedAt: generatedAt,
		Report:      report,
		Categories:  categories,
	}
}

func generateMarkdownReport(data reportTemplateData) (string, error) {
	var buf bytes.Buffer
	if err := markdownReportTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func printReportTable(stored *store.StoredReport) {
	report := stored.Report
	data := buildReportTemplateData(stored)

	fmt.Printf("%s %s\n", colorInfo("URL:"), report.URL)
	fmt.Printf("%s %s\n", colorInfo("Platform:"), report.Platform)
	fmt.Printf("%s %d\n", colorInfo("Technologies:"), report.TotalFound)
	fmt.Printf("%s %s\n", colorInfo("Confidence:"), formatConfidenceWithColor(string(report.OverallConfidence)))
	fmt.Printf("%s %s\n", colorInfo("Method:"), report.Method)
	if report.EscalationReason != "" {
		fmt.Printf("%s %s\n", colorInfo("Escalation:"), report.EscalationReason)
	}
	fmt.Printf("%s pattern=%dms ai=%dms total=%dms\n",
		colorInfo("Timings:"), report.Metrics.PatternMs, report.Metrics.AIMs, report.Metrics.TotalMs)
	fmt.Println()

	if report.TotalFound == 0 {
		fmt.Printf("%s no technologies detected\n", colorWarn("!"))
	}

	for _, section := range data.Categories {
		fmt.Println(colorInfo(titleCase(section.Name)))
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  NAME\tCONFIDENCE\tRISK\tPERF\tSOURCE\tVERSION")
		for _, f := range section.Findings {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\n",
				f.Name,
				formatConfidenceWithColor(string(f.Confidence)),
				formatRiskWithColor(string(f.RiskLevel)),
				f.PerformanceImpact,
				f.Source,
				f.Version,
			)
		}
		_ = w.Flush()
		fmt.Println()
	}

	if len(report.SecurityRisks) > 0 {
		fmt.Println(colorError("Security risks"))
		for _, f := range report.SecurityRisks {
			fmt.Printf("  %s %s (%s)\n", colorError("•"), f.Name, f.RiskLevel)
		}
		fmt.Println()
	}

	if len(report.PerformanceHeavy) > 0 {
		fmt.Println(colorWarn("Performance heavy"))
		for _, f := range report.PerformanceHeavy {
			fmt.Printf("  %s %s (%s impact)\n", colorWarn("•"), f.Name, f.PerformanceImpact)
		}
		fmt.Println()
	}

	if len(report.Recommendations) > 0 {
		fmt.Println(colorInfo("Recommendations"))
		for _, rec := range report.Recommendations {
			fmt.Printf("  %s %s\n", colorInfo("→"), rec)
		}
	}
}

func generatePDFReportBytes(data reportTemplateData) ([]byte, error) {
	report := data.Report

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Technology Report: %s", data.Host), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Metadata section
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("URL: %s", report.URL), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Platform: %s", report.Platform), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", data.GeneratedAt), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Detection method: %s", report.Method), "", 1, "", false, 0, "")
	if report.EscalationReason != "" {
		pdf.MultiCell(0, 6, fmt.Sprintf("Escalation: %s", report.EscalationReason), "", "", false)
	}
	pdf.Ln(5)

	// Summary section
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Technologies: %d | Overall confidence: %s | Security risks: %d | Performance heavy: %d",
		report.TotalFound, report.OverallConfidence, len(report.SecurityRisks), len(report.PerformanceHeavy)), "", 1, "", false, 0, "")
	pdf.Ln(5)

	// Findings by category
	for _, section := range data.Categories {
		if pdf.GetY() > 250 {
			pdf.AddPage()
		}

		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(0, 7, titleCase(section.Name), "", 1, "", true, 0, "")
		pdf.Ln(1)

		pdf.SetFont("Arial", "", 9)
		for _, f := range section.Findings {
			if pdf.GetY() > 270 {
				pdf.AddPage()
			}
			line := fmt.Sprintf("%s [%s confidence, %s source]", f.Name, f.Confidence, f.Source)
			if f.Version != "" {
				line += " v" + f.Version
			}
			pdf.CellFormat(0, 5, line, "", 1, "", false, 0, "")
			if f.Description != "" {
				pdf.SetFont("Arial", "I", 8)
				pdf.MultiCell(0, 4, "  "+f.Description, "", "", false)
				pdf.SetFont("Arial", "", 9)
			}
		}
		pdf.Ln(3)
	}

	// Security risks
	if len(report.SecurityRisks) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Security Risks", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, f := range report.SecurityRisks {
			pdf.MultiCell(0, 5, fmt.Sprintf("- %s (%s risk)", f.Name, f.RiskLevel), "", "", false)
		}
		pdf.Ln(3)
	}

	// Recommendations
	if len(report.Recommendations) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Recommendations", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 9)
		for _, rec := range report.Recommendations {
			if pdf.GetY() > 270 {
				pdf.AddPage()
			}
			pdf.MultiCell(0, 5, fmt.Sprintf("- %s", rec), "", "", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// titleCase upper-cases the first letter of a category label.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
