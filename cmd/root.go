package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/markvantol/dirhunt/internal/config"
	"github.com/markvantol/dirhunt/internal/logging"
	"github.com/markvantol/dirhunt/internal/reqparse"
	"github.com/markvantol/dirhunt/internal/runner"
	"github.com/markvantol/dirhunt/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	cfg         config.ScanConfig
	headerFlags []string
	queryFlags  []string
)

type flagGroup struct {
	title string
	flags []string
}

var helpGroups = []flagGroup{
	{"TARGET", []string{"url", "urls-file", "request-file", "wordlist", "extensions", "force-extensions", "add-slash", "query", "cidr", "ports"}},
	{"DISCOVERY", []string{"recursive", "max-depth"}},
	{"FILTERS", []string{"include-status", "exclude-status", "exclude-size", "auto-filter", "wildcard-tolerance"}},
	{"PERFORMANCE", []string{"threads", "timeout"}},
	{"HTTP", []string{"header", "user-agent", "proxy", "follow-redirects"}},
	{"OUTPUT", []string{"output", "format", "quiet", "no-color", "sort", "tree", "on-result"}},
	{"LOGGING", []string{"verbose", "debug"}},
}

var rootCmd = &cobra.Command{
	Use:     "dirhunt -u <url> [flags]",
	Short:   "Recursive HTTP content-discovery scanner",
	Version: version.Version,
	Long: `dirhunt probes a base URL against a wordlist, classifies which
responses correspond to existing resources, and recursively re-scans any
subtree a response indicates is a directory. Soft-404 catch-all pages are
detected and filtered automatically via wildcard calibration.`,
	Example: `  dirhunt -u https://example.com
  dirhunt -u https://example.com -e php,html -t 50
  dirhunt -u https://example.com -x 403,500 -o results.json --format json
  dirhunt -u https://example.com --recursive --max-depth 3
  dirhunt -r burp.req -e php,html
  dirhunt -l urls.txt -w wordlist.txt
  dirhunt --cidr 192.168.1.0/24 --ports 80,443,8080
  dirhunt -u https://example.com --on-result "notify-send {url}"`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg.RequestFile != "" {
			parsed, err := reqparse.ParseFile(cfg.RequestFile)
			if err != nil {
				return fmt.Errorf("parsing request file: %w", err)
			}
			if !cmd.Flags().Changed("url") {
				cfg.URL = parsed.URL
			}
			if cfg.Headers == nil {
				cfg.Headers = make(map[string]string)
			}
			for key, val := range parsed.Headers {
				k := strings.ToLower(key)
				if k == "host" || k == "content-length" || k == "accept-encoding" {
					continue
				}
				if _, exists := cfg.Headers[key]; !exists {
					cfg.Headers[key] = val
				}
			}
			if !cmd.Flags().Changed("user-agent") {
				if ua, ok := parsed.Headers["User-Agent"]; ok {
					cfg.UserAgent = ua
				}
			}
			if !cfg.Quiet {
				fmt.Fprintf(os.Stderr, "[+] Loaded request from %s -> %s\n", cfg.RequestFile, cfg.URL)
			}
		}

		if cfg.URL == "" && cfg.URLsFile == "" && cfg.CIDRTargets == "" {
			_ = cmd.Help()
			fmt.Fprintln(os.Stderr)
			return fmt.Errorf("target required: use -u, -l, --cidr, or --request-file")
		}
		if cfg.URL != "" && !strings.HasPrefix(cfg.URL, "http://") && !strings.HasPrefix(cfg.URL, "https://") {
			cfg.URL = "http://" + cfg.URL
		}
		if len(cfg.IncludeStatus) > 0 && len(cfg.ExcludeStatus) > 0 {
			return fmt.Errorf("--include-status and --exclude-status are mutually exclusive")
		}
		if cfg.SortBy != "" && cfg.SortBy != "status" && cfg.SortBy != "url" && cfg.SortBy != "size" {
			return fmt.Errorf("--sort must be one of: status, url, size")
		}
		if cfg.OutputFormat != "text" && cfg.OutputFormat != "json" && cfg.OutputFormat != "csv" {
			return fmt.Errorf("--format must be one of: text, json, csv")
		}

		if len(headerFlags) > 0 {
			if cfg.Headers == nil {
				cfg.Headers = make(map[string]string, len(headerFlags))
			}
			for _, h := range headerFlags {
				parts := strings.SplitN(h, ":", 2)
				if len(parts) != 2 {
					return fmt.Errorf("invalid header format %q, expected 'Key: Value'", h)
				}
				cfg.Headers[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
			}
		}
		if len(queryFlags) > 0 {
			cfg.Queries = make(map[string]string, len(queryFlags))
			for _, q := range queryFlags {
				parts := strings.SplitN(q, "=", 2)
				if len(parts) != 2 {
					return fmt.Errorf("invalid query format %q, expected 'key=value'", q)
				}
				cfg.Queries[parts[0]] = parts[1]
			}
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(cfg.Verbose, cfg.Debug)
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return runner.Run(ctx, &cfg)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := rootCmd.Flags()

	// Target
	f.StringVarP(&cfg.URL, "url", "u", "", "Target URL")
	f.StringVarP(&cfg.URLsFile, "urls-file", "l", "", "File with one URL per line")
	f.StringVarP(&cfg.RequestFile, "request-file", "r", "", "Raw HTTP request file (e.g. Burp Suite export)")
	f.StringVarP(&cfg.WordlistPath, "wordlist", "w", "", "Custom wordlist path (default: built-in)")
	f.StringSliceVarP(&cfg.Extensions, "extensions", "e", nil, "File extensions to probe (e.g. php,html,js)")
	f.BoolVarP(&cfg.ForceExtensions, "force-extensions", "f", false, "Bake extensions directly into the wordlist, in addition to per-request expansion")
	f.BoolVar(&cfg.AddSlash, "add-slash", false, "Append a trailing slash to every probed path")
	f.StringSliceVar(&queryFlags, "query", nil, "Query parameters to append to every request (key=value, repeatable)")

	// Network
	f.StringVar(&cfg.CIDRTargets, "cidr", "", "CIDR range to scan (e.g. 192.168.1.0/24)")
	f.StringVar(&cfg.Ports, "ports", "", "Ports for CIDR targets (comma-separated, e.g. 80,443,8080)")

	// Discovery
	f.BoolVar(&cfg.Recursive, "recursive", false, "Recurse into discovered directories")
	f.IntVarP(&cfg.MaxDepth, "max-depth", "R", 3, "Maximum recursion depth (0 = unbounded)")

	// Filtering
	f.VarP(&intSliceValue{target: &cfg.IncludeStatus}, "include-status", "i", "Only report these status codes (comma-separated)")
	f.VarP(&intSliceValue{target: &cfg.ExcludeStatus}, "exclude-status", "x", "Hide these status codes (comma-separated)")
	f.Var(&int64SliceValue{target: &cfg.ExcludeSize}, "exclude-size", "Hide responses of these exact content lengths (comma-separated)")
	f.BoolVar(&cfg.AutoFilter, "auto-filter", true, "Calibrate and filter wildcard/soft-404 responses")
	f.IntVar(&cfg.WildcardTolerance, "wildcard-tolerance", 0, "Byte tolerance for wildcard-size matching")

	// Performance
	f.IntVarP(&cfg.Threads, "threads", "t", 25, "Number of concurrent requests per scan")
	f.DurationVar(&cfg.Timeout, "timeout", 10*time.Second, "HTTP request timeout")

	// HTTP
	f.StringSliceVarP(&headerFlags, "header", "H", nil, "Custom headers (Key: Value, repeatable)")
	f.StringVar(&cfg.UserAgent, "user-agent", "", "Custom User-Agent string")
	f.StringVar(&cfg.Proxy, "proxy", "", "HTTP/SOCKS proxy URL")
	f.BoolVar(&cfg.FollowRedirects, "follow-redirects", false, "Follow HTTP redirects instead of reporting the 3xx itself")

	// Output
	f.StringVarP(&cfg.OutputFile, "output", "o", "", "Output file path (default: stdout/terminal)")
	f.StringVar(&cfg.OutputFormat, "format", "text", "Output format: text, json, csv")
	f.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Only print bare URLs, no status/size/banner/summary")
	f.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	f.StringVar(&cfg.SortBy, "sort", "", "Sort results: status, url, size (buffers until scan completes)")
	f.BoolVar(&cfg.Tree, "tree", false, "Print a directory tree summary after the scan (json, csv or --sort output only)")
	f.StringVar(&cfg.OnResultCmd, "on-result", "", "Shell command to run for each result (receives JSON on stdin)")

	// Logging
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose (info-level) logging")
	f.BoolVar(&cfg.Debug, "debug", false, "Debug-level logging")

	// Custom help: categorized flags like httpx.
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		w := os.Stderr
		fmt.Fprint(w, helpBanner(cmd.Version))
		fmt.Fprintf(w, "%s\n\nUsage:\n  %s\n", cmd.Long, cmd.UseLine())
		fmt.Fprintf(w, "\nExamples:\n%s\n", cmd.Example)
		fmt.Fprintf(w, "\nFlags:\n")
		for _, g := range helpGroups {
			fmt.Fprintf(w, "\n%s:\n", g.title)
			for _, name := range g.flags {
				if f := cmd.Flags().Lookup(name); f != nil {
					fmt.Fprintln(w, formatFlag(f))
				}
			}
		}
		fmt.Fprintln(w)
	})
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// intSliceValue implements pflag.Value for comma-separated int slices.
type intSliceValue struct {
	target *[]int
}

func (v *intSliceValue) String() string {
	if v.target == nil || len(*v.target) == 0 {
		return ""
	}
	parts := make([]string, len(*v.target))
	for i, val := range *v.target {
		parts[i] = strconv.Itoa(val)
	}
	return strings.Join(parts, ",")
}

func (v *intSliceValue) Set(s string) error {
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid status code %q: %w", p, err)
		}
		*v.target = append(*v.target, n)
	}
	return nil
}

func (v *intSliceValue) Type() string { return "ints" }

// int64SliceValue implements pflag.Value for comma-separated int64 slices.
type int64SliceValue struct {
	target *[]int64
}

func (v *int64SliceValue) String() string {
	if v.target == nil || len(*v.target) == 0 {
		return ""
	}
	parts := make([]string, len(*v.target))
	for i, val := range *v.target {
		parts[i] = strconv.FormatInt(val, 10)
	}
	return strings.Join(parts, ",")
}

func (v *int64SliceValue) Set(s string) error {
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid size %q: %w", p, err)
		}
		*v.target = append(*v.target, n)
	}
	return nil
}

func (v *int64SliceValue) Type() string { return "int64s" }

func formatFlag(f *pflag.Flag) string {
	var left string
	if f.Shorthand != "" {
		left = fmt.Sprintf("-%s, --%s", f.Shorthand, f.Name)
	} else {
		left = fmt.Sprintf("    --%s", f.Name)
	}

	typ := f.Value.Type()
	if typ != "bool" {
		left += " " + typ
	}

	const col = 36
	for len(left) < col {
		left += " "
	}

	right := f.Usage
	def := f.DefValue
	if def != "" && def != "false" && def != "0" && def != "0s" && def != "[]" {
		right += fmt.Sprintf(" (default %s)", def)
	}

	return "   " + left + right
}

func helpBanner(ver string) string {
	if ver != "dev" && ver != "" && !strings.HasPrefix(ver, "v") {
		ver = "v" + ver
	}
	return fmt.Sprintf(`
     _____ _      __  __            __
    / ___/(_)____/ / / /_  ______  / /_
    \__ \/ / ___/ /_/ / / / / __ \/ __/
   ___/ / / /  / __  / /_/ / / / / /_
  /____/_/_/  /_/ /_/\__,_/_/ /_/\__/   %s

`, ver)
}
