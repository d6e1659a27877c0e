package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lagowski/go-openprovider/internal/config"
	"github.com/lagowski/go-openprovider/pkg/model"
	"github.com/lagowski/go-openprovider/pkg/openprovider"
)

// version is overridden by goreleaser via -ldflags "-X main.version=...".
var version = "dev"

var (
	cfgFile      string
	accountName  string
	apiURL       string
	outputFormat string

	cfg    *config.Config
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "openprovider",
	Short: "OpenProvider registrar CLI",
	Long: `openprovider is a command-line interface for the OpenProvider
domain registrar API.

It checks domain availability, inspects customer handles, browses the
SSL certificate catalog and lists supported extensions. Credentials come
from a YAML config file or from OPENPROVIDER_* environment variables.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			if home, err := os.UserHomeDir(); err == nil {
				candidate := filepath.Join(home, ".openprovider", "config.yaml")
				if _, err := os.Stat(candidate); err == nil {
					path = candidate
				}
			}
		}
		if path == "" {
			// No config file: credentials come from the environment.
			return nil
		}

		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
		logger = buildLogger(cfg.Logging)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.openprovider/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&accountName, "account", "", "named account from the config file or OPENPROVIDER_<ACCOUNT>_* environment")
	rootCmd.PersistentFlags().StringVar(&apiURL, "url", "", "API endpoint (default https://api.openprovider.eu)")
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format: text or json")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(customerCmd)
	rootCmd.AddCommand(sslCmd)
	rootCmd.AddCommand(extensionsCmd)
	rootCmd.AddCommand(resellerCmd)
	rootCmd.AddCommand(versionCmd)
}

func buildLogger(lc config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch lc.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// newClient builds a client from the loaded config file, falling back to
// OPENPROVIDER_* environment variables when no config is present.
func newClient() (*openprovider.Client, error) {
	if cfg == nil {
		opts := []openprovider.Option{openprovider.WithLogger(logger)}
		if apiURL != "" {
			opts = append(opts, openprovider.WithURL(apiURL))
		}
		return openprovider.FromEnv(accountName, opts...)
	}

	account, err := cfg.Account(accountName)
	if err != nil {
		return nil, err
	}

	// Endpoint precedence: --url flag, per-account URL, api.url.
	url := cfg.API.URL
	if account.URL != "" {
		url = account.URL
	}
	if apiURL != "" {
		url = apiURL
	}

	opts := []openprovider.Option{
		openprovider.WithURL(url),
		openprovider.WithUserAgent(cfg.API.UserAgent),
		openprovider.WithTimeout(cfg.API.Timeout.Std()),
		openprovider.WithLogger(logger),
	}
	if cfg.API.TLSSkipVerify {
		opts = append(opts, openprovider.WithTLSSkipVerify())
	}
	if account.PasswordHash != "" {
		opts = append(opts, openprovider.WithPasswordHash(account.PasswordHash))
	} else {
		opts = append(opts, openprovider.WithPassword(account.Password))
	}

	return openprovider.New(account.Username, opts...)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printField prints a labelled model attribute, skipping absent or empty
// ones.
func printField(label string, m *model.Model, name string) {
	if v, err := m.Get(name); err == nil && v != "" {
		fmt.Printf("%-10s%s\n", label+":", v)
	}
}

// ── check ────────────────────────────────────────────────────────────────────

// checkRow holds one domain's availability for JSON output.
type checkRow struct {
	Domain string `json:"domain"`
	Status string `json:"status"`
}

var checkCmd = &cobra.Command{
	Use:   "check <domain> [domain...]",
	Short: "Check domain availability",
	Long: `Check reports whether domains are available for registration.

Multiple domains are checked in a single API call:

  openprovider check example.com example.net example.org`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	if len(args) == 1 {
		status, err := c.Domains.Check(ctx, args[0])
		if err != nil {
			return fmt.Errorf("check %q: %w", args[0], err)
		}
		if outputFormat == "json" {
			return printJSON(checkRow{Domain: args[0], Status: status})
		}
		fmt.Printf("%s: %s\n", args[0], status)
		return nil
	}

	statuses, err := c.Domains.CheckMany(ctx, args)
	if err != nil {
		return fmt.Errorf("check domains: %w", err)
	}

	// Keep input order in the output.
	rows := make([]checkRow, len(args))
	for i, domain := range args {
		rows[i] = checkRow{Domain: domain, Status: statuses[domain]}
	}

	if outputFormat == "json" {
		return printJSON(rows)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DOMAIN\tSTATUS")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\n", row.Domain, row.Status)
	}
	return w.Flush()
}

// ── customer ─────────────────────────────────────────────────────────────────

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Inspect customer handles",
}

var customerGetCmd = &cobra.Command{
	Use:   "get <handle>",
	Short: "Show one customer's details",
	Args:  cobra.ExactArgs(1),
	RunE:  runCustomerGet,
}

var (
	customerCompany  string
	customerLastName string
	customerEmail    string
	customerLimit    int
)

var customerSearchCmd = &cobra.Command{
	Use:   "search",
	Short: "List customer handles",
	RunE:  runCustomerSearch,
}

func init() {
	customerSearchCmd.Flags().StringVar(&customerCompany, "company", "", "SQL-style pattern on the company name (e.g. 'Acme%')")
	customerSearchCmd.Flags().StringVar(&customerLastName, "last-name", "", "SQL-style pattern on the last name")
	customerSearchCmd.Flags().StringVar(&customerEmail, "email", "", "SQL-style pattern on the email address")
	customerSearchCmd.Flags().IntVar(&customerLimit, "limit", 0, "Maximum number of results")

	customerCmd.AddCommand(customerGetCmd)
	customerCmd.AddCommand(customerSearchCmd)
}

func runCustomerGet(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	customer, err := c.Customers.Retrieve(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("retrieve customer %q: %w", args[0], err)
	}

	if outputFormat == "json" {
		type customerRow struct {
			Handle  string `json:"handle"`
			Company string `json:"company,omitempty"`
			Name    string `json:"name,omitempty"`
			Email   string `json:"email,omitempty"`
			Phone   string `json:"phone,omitempty"`
			Address string `json:"address,omitempty"`
		}
		row := customerRow{Handle: args[0]}
		if v, err := customer.Get("handle"); err == nil {
			row.Handle = v
		}
		if v, err := customer.Get("company_name"); err == nil {
			row.Company = v
		}
		if name, err := customer.Name(); err == nil {
			row.Name = name.String()
		}
		if v, err := customer.Get("email"); err == nil {
			row.Email = v
		}
		if phone, err := customer.Phone(); err == nil {
			row.Phone = phone.String()
		}
		if addr, err := customer.Address(); err == nil {
			row.Address = addressLine(addr)
		}
		return printJSON(row)
	}

	printField("Handle", &customer.Model, "handle")
	printField("Company", &customer.Model, "company_name")
	if name, err := customer.Name(); err == nil {
		fmt.Printf("%-10s%s\n", "Name:", name)
	}
	printField("Email", &customer.Model, "email")
	if phone, err := customer.Phone(); err == nil {
		fmt.Printf("%-10s%s\n", "Phone:", phone)
	}
	if addr, err := customer.Address(); err == nil {
		fmt.Printf("%-10s%s\n", "Address:", addressLine(addr))
	}
	return nil
}

func runCustomerSearch(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	customers, err := c.Customers.Search(context.Background(), openprovider.CustomerSearchFilter{
		CompanyNamePattern: customerCompany,
		LastNamePattern:    customerLastName,
		EmailPattern:       customerEmail,
		Limit:              customerLimit,
	})
	if err != nil {
		return fmt.Errorf("search customers: %w", err)
	}

	if outputFormat == "json" {
		type customerRow struct {
			Handle  string `json:"handle"`
			Company string `json:"company,omitempty"`
			Email   string `json:"email,omitempty"`
		}
		rows := make([]customerRow, 0, len(customers))
		for _, customer := range customers {
			var row customerRow
			if v, err := customer.Get("handle"); err == nil {
				row.Handle = v
			}
			if v, err := customer.Get("company_name"); err == nil {
				row.Company = v
			}
			if v, err := customer.Get("email"); err == nil {
				row.Email = v
			}
			rows = append(rows, row)
		}
		return printJSON(rows)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "HANDLE\tCOMPANY\tEMAIL")
	for _, customer := range customers {
		handle, _ := customer.Get("handle")
		company, _ := customer.Get("company_name")
		email, _ := customer.Get("email")
		fmt.Fprintf(w, "%s\t%s\t%s\n", handle, company, email)
	}
	return w.Flush()
}

// addressLine renders a postal address on one line, skipping empty parts.
func addressLine(addr *model.Address) string {
	var parts []string
	street, _ := addr.Get("street")
	number, _ := addr.Get("number")
	if street != "" {
		parts = append(parts, strings.TrimSpace(street+" "+number))
	}
	zipcode, _ := addr.Get("zipcode")
	city, _ := addr.Get("city")
	if zipcode != "" || city != "" {
		parts = append(parts, strings.TrimSpace(zipcode+" "+city))
	}
	if country, _ := addr.Get("country"); country != "" {
		parts = append(parts, country)
	}
	return strings.Join(parts, ", ")
}

// ── ssl ──────────────────────────────────────────────────────────────────────

var sslCmd = &cobra.Command{
	Use:   "ssl",
	Short: "Browse SSL certificate products and orders",
}

var sslProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the available certificate products",
	RunE:  runSSLProducts,
}

var sslOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List the account's certificate orders",
	RunE:  runSSLOrders,
}

func init() {
	sslCmd.AddCommand(sslProductsCmd)
	sslCmd.AddCommand(sslOrdersCmd)
}

func runSSLProducts(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	products, err := c.SSL.SearchProducts(context.Background())
	if err != nil {
		return fmt.Errorf("search ssl products: %w", err)
	}

	if outputFormat == "json" {
		type productRow struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Brand string `json:"brand,omitempty"`
		}
		rows := make([]productRow, 0, len(products))
		for _, product := range products {
			var row productRow
			row.ID, _ = product.Get("id")
			row.Name, _ = product.Get("name")
			row.Brand, _ = product.Get("brand_name")
			rows = append(rows, row)
		}
		return printJSON(rows)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBRAND")
	for _, product := range products {
		id, _ := product.Get("id")
		name, _ := product.Get("name")
		brand, _ := product.Get("brand_name")
		fmt.Fprintf(w, "%s\t%s\t%s\n", id, name, brand)
	}
	return w.Flush()
}

func runSSLOrders(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	orders, err := c.SSL.SearchOrders(context.Background())
	if err != nil {
		return fmt.Errorf("search ssl orders: %w", err)
	}

	if outputFormat == "json" {
		type orderRow struct {
			ID         string `json:"id"`
			CommonName string `json:"common_name,omitempty"`
			Status     string `json:"status,omitempty"`
		}
		rows := make([]orderRow, 0, len(orders))
		for _, order := range orders {
			var row orderRow
			row.ID, _ = order.Get("id")
			row.CommonName, _ = order.Get("common_name")
			row.Status, _ = order.Get("status")
			rows = append(rows, row)
		}
		return printJSON(rows)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMMON NAME\tSTATUS")
	for _, order := range orders {
		id, _ := order.Get("id")
		cn, _ := order.Get("common_name")
		status, _ := order.Get("status")
		fmt.Fprintf(w, "%s\t%s\t%s\n", id, cn, status)
	}
	return w.Flush()
}

// ── extensions ───────────────────────────────────────────────────────────────

var extensionsCmd = &cobra.Command{
	Use:   "extensions",
	Short: "Browse supported domain extensions",
}

var extensionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all extensions the account can register under",
	RunE:  runExtensionsList,
}

func init() {
	extensionsCmd.AddCommand(extensionsListCmd)
}

func runExtensionsList(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	extensions, err := c.Extensions.Search(context.Background())
	if err != nil {
		return fmt.Errorf("search extensions: %w", err)
	}

	names := make([]string, 0, len(extensions))
	for _, extension := range extensions {
		if name, err := extension.Get("name"); err == nil {
			names = append(names, name)
		}
	}

	if outputFormat == "json" {
		return printJSON(names)
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

// ── reseller ─────────────────────────────────────────────────────────────────

var resellerCmd = &cobra.Command{
	Use:   "reseller",
	Short: "Show the account's reseller profile",
	RunE:  runReseller,
}

func runReseller(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	reseller, err := c.Resellers.Retrieve(context.Background())
	if err != nil {
		return fmt.Errorf("retrieve reseller: %w", err)
	}

	if outputFormat == "json" {
		type resellerRow struct {
			ID      string `json:"id"`
			Company string `json:"company,omitempty"`
			Balance string `json:"balance,omitempty"`
			Phone   string `json:"phone,omitempty"`
			Address string `json:"address,omitempty"`
		}
		var row resellerRow
		row.ID, _ = reseller.Get("id")
		row.Company, _ = reseller.Get("company_name")
		row.Balance, _ = reseller.Get("balance")
		if phone, err := reseller.Phone(); err == nil {
			row.Phone = phone.String()
		}
		if addr, err := reseller.Address(); err == nil {
			row.Address = addressLine(addr)
		}
		return printJSON(row)
	}

	printField("ID", &reseller.Model, "id")
	printField("Company", &reseller.Model, "company_name")
	printField("Balance", &reseller.Model, "balance")
	if phone, err := reseller.Phone(); err == nil {
		fmt.Printf("%-10s%s\n", "Phone:", phone)
	}
	if addr, err := reseller.Address(); err == nil {
		fmt.Printf("%-10s%s\n", "Address:", addressLine(addr))
	}
	return nil
}

// ── version ──────────────────────────────────────────────────────────────────

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the openprovider CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("openprovider %s\n", version)
	},
}
