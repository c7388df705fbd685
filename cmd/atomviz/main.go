package main

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/atomviz/internal/config"
	"github.com/san-kum/atomviz/internal/element"
	"github.com/san-kum/atomviz/internal/export"
	"github.com/san-kum/atomviz/internal/gui"
	"github.com/san-kum/atomviz/internal/viz"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	// Config file
	configFile string
	// Preset name
	preset string
	// Frame rate override for the animation
	frameRate int
	// Export options
	frames     int
	outputFile string
	// Destination for the config command
	writeFile string
	// Side panel theme for the terminal view
	theme string
)

// main registers the commands and runs the prompt-first window when no
// subcommand is given. It exits with status 1 if a command fails.
func main() {
	log.SetFlags(0)
	log.SetPrefix("atomviz: ")

	rootCmd := &cobra.Command{
		Use:          "atomviz",
		Short:        "animated atom structure visualizer (Z = 1-30)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, nil)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "palette preset (see 'atomviz presets')")
	rootCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "animation frame rate")

	guiCmd := &cobra.Command{
		Use:   "gui [atomic-number]",
		Short: "open the visualizer window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	guiCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "animation frame rate")

	tuiCmd := &cobra.Command{
		Use:   "tui [atomic-number]",
		Short: "run the visualizer in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}
	tuiCmd.Flags().IntVar(&frameRate, "fps", config.DefaultFPS, "animation frame rate")
	tuiCmd.Flags().StringVar(&theme, "theme", "", "panel theme ("+strings.Join(viz.ThemeNames(), ", ")+"), defaults to the preset")

	infoCmd := &cobra.Command{
		Use:   "info [atomic-number]",
		Short: "show an element's nucleus and shell occupancy",
		Args:  cobra.ExactArgs(1),
		RunE:  showInfo,
	}

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "list every supported element",
		RunE:  showTable,
	}

	exportCmd := &cobra.Command{
		Use:   "export [atomic-number]",
		Short: "render an animation frame to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportCmd.Flags().IntVar(&frames, "frames", 60, "frames to animate before capturing")
	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "atom.svg", "output file, - for stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list palette presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE:  showConfig,
	}
	configCmd.Flags().StringVarP(&writeFile, "write", "w", "", "write the configuration to a file instead")

	rootCmd.AddCommand(guiCmd, tuiCmd, infoCmd, tableCmd, exportCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies the preset first, then the config file, then flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadWith(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		log.Printf("loaded config from %s", configFile)
		cfg = loaded
	}

	if f := cmd.Flags().Lookup("fps"); f != nil && f.Changed {
		cfg.Window.FPS = frameRate
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// startElement parses the optional atomic-number argument; 0 means prompt.
func startElement(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	return element.ParseAtomicNumber(args[0])
}

func runGUI(cmd *cobra.Command, args []string) error {
	z, err := startElement(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return gui.Run(cfg, z)
}

func runTUI(cmd *cobra.Command, args []string) error {
	z, err := startElement(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	name, err := panelTheme()
	if err != nil {
		return err
	}
	return viz.RunTUI(cfg, z, name)
}

// panelTheme picks --theme, then the preset name, then classic.
func panelTheme() (string, error) {
	switch {
	case theme != "":
		if !slices.Contains(viz.ThemeNames(), theme) {
			return "", fmt.Errorf("unknown theme: %s (available: %v)", theme, viz.ThemeNames())
		}
		return theme, nil
	case slices.Contains(viz.ThemeNames(), preset):
		return preset, nil
	}
	return viz.ThemeClassic.Name, nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

func showInfo(cmd *cobra.Command, args []string) error {
	z, err := element.ParseAtomicNumber(args[0])
	if err != nil {
		return err
	}
	r := element.MustLookup(z)

	row := func(label string, value any) {
		fmt.Println("  " + labelStyle.Render(label) + valueStyle.Render(fmt.Sprint(value)))
	}
	fmt.Println(titleStyle.Render(fmt.Sprintf("%s (%s)", r.Name, r.Symbol)))
	row("atomic number", r.AtomicNumber)
	row("mass number", r.Mass)
	row("protons", r.Protons())
	row("neutrons", r.Neutrons())
	row("electrons", r.Electrons())
	row("shells", formatShells(element.ShellOccupancy(r.Electrons())))
	return nil
}

func formatShells(occ []int) string {
	parts := make([]string, len(occ))
	for i, n := range occ {
		parts[i] = fmt.Sprintf("%c%d", 'K'+i, n)
	}
	return strings.Join(parts, " ")
}

func showTable(cmd *cobra.Command, args []string) error {
	records := element.All()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Z\tSYMBOL\tNAME\tMASS\tP\tN\tSHELLS")
	neutrons := make([]float64, len(records))
	for i, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%d\t%s\n",
			r.AtomicNumber, r.Symbol, r.Name, r.Mass, r.Protons(), r.Neutrons(),
			formatShells(element.ShellOccupancy(r.Electrons())))
		neutrons[i] = float64(r.Neutrons())
	}
	w.Flush()

	fmt.Println()
	graph := asciigraph.Plot(neutrons,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("neutrons by atomic number"),
	)
	fmt.Println(graph)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	z, err := element.ParseAtomicNumber(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	svg, err := export.Snapshot(cfg, z, frames)
	if err != nil {
		return err
	}

	if outputFile == "-" {
		_, err := fmt.Print(svg)
		return err
	}
	if err := os.WriteFile(outputFile, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	log.Printf("wrote %s (%s, %d frames)", outputFile, element.MustLookup(z).Name, frames)
	return nil
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if writeFile != "" {
		if err := config.Save(writeFile, cfg); err != nil {
			return err
		}
		log.Printf("wrote %s", writeFile)
		return nil
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(cfg)
}
