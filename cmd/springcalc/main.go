package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/pkiran/springcalc/internal/config"
	"github.com/pkiran/springcalc/internal/export"
	"github.com/pkiran/springcalc/internal/material"
	"github.com/pkiran/springcalc/internal/spring"
	"github.com/pkiran/springcalc/internal/sweep"
	"github.com/pkiran/springcalc/internal/tui"
	"github.com/pkiran/springcalc/internal/units"
)

var (
	shearModulus float64 // GPa
	deflection   float64 // mm
	materialName string
	configFile   string
	jsonOutput   bool
	// sweep range
	sweepFrom  float64
	sweepTo    float64
	sweepSteps int
	csvOutput  bool
	outFile    string
	// force table
	maxDeflection float64
	tableRows     int
)

// main registers commands and flags and launches the interactive form when
// no subcommand is given. It exits with status 1 on command errors.
func main() {
	rootCmd := &cobra.Command{
		Use:   "springcalc",
		Short: "coil-spring rate and force calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	rateCmd := &cobra.Command{
		Use:   "rate [d] [ID] [n]",
		Short: "compute spring rate (wire Ø mm, inner Ø mm, active coils)",
		Args:  cobra.ExactArgs(3),
		RunE:  computeRate,
	}
	rateCmd.Flags().Float64VarP(&shearModulus, "shear-modulus", "G", config.DefaultShearModulusGPa, "shear modulus G [GPa]")
	rateCmd.Flags().Float64VarP(&deflection, "deflection", "D", 0.0, "deflection [mm]")
	rateCmd.Flags().StringVar(&materialName, "material", "", "material preset (overrides -G unless -G is set)")
	rateCmd.Flags().BoolVar(&jsonOutput, "json", false, "machine-readable output")

	sweepCmd := &cobra.Command{
		Use:   "sweep [wire|inner|coils] [d] [ID] [n]",
		Short: "plot the rate across a parameter range",
		Args:  cobra.ExactArgs(4),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64VarP(&shearModulus, "shear-modulus", "G", config.DefaultShearModulusGPa, "shear modulus G [GPa]")
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "range start (mm, or coils)")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "range end (mm, or coils)")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 40, "number of samples")
	sweepCmd.Flags().BoolVar(&csvOutput, "csv", false, "write CSV to stdout instead of plotting")
	sweepCmd.Flags().StringVar(&outFile, "out", "", "write JSON to file")

	tableCmd := &cobra.Command{
		Use:   "table [d] [ID] [n]",
		Short: "force table over a deflection range",
		Args:  cobra.ExactArgs(3),
		RunE:  forceTable,
	}
	tableCmd.Flags().Float64VarP(&shearModulus, "shear-modulus", "G", config.DefaultShearModulusGPa, "shear modulus G [GPa]")
	tableCmd.Flags().StringVar(&materialName, "material", "", "material preset")
	tableCmd.Flags().Float64Var(&maxDeflection, "max-deflection", 25.0, "largest deflection [mm]")
	tableCmd.Flags().IntVar(&tableRows, "rows", 10, "number of rows")

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list shear-modulus presets",
		RunE:  listMaterials,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive calculator form",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}

	rootCmd.AddCommand(rateCmd, sweepCmd, tableCmd, materialsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func parseArg(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric input for %s: %q", name, raw)
	}
	return v, nil
}

// resolveModulus applies config and material defaults under explicit flag
// overrides, the same precedence the config file gets elsewhere.
func resolveModulus(cmd *cobra.Command, cfg *config.Config) (float64, error) {
	g := shearModulus
	if !cmd.Flags().Changed("shear-modulus") {
		g = cfg.ShearModulusGPa

		name := materialName
		if name == "" {
			name = cfg.Material
		}
		if name != "" {
			m, ok := material.Get(name)
			if !ok {
				return 0, fmt.Errorf("unknown material: %s (see 'springcalc materials')", name)
			}
			g = m.ShearModulusGPa
		}
	}
	return g, nil
}

func computeRate(cmd *cobra.Command, args []string) error {
	d, err := parseArg("wire diameter", args[0])
	if err != nil {
		return err
	}
	id, err := parseArg("inner diameter", args[1])
	if err != nil {
		return err
	}
	n, err := parseArg("active coils", args[2])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	g, err := resolveModulus(cmd, cfg)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("deflection") && cfg.DeflectionMm != 0 {
		deflection = cfg.DeflectionMm
	}

	if err := spring.ValidateGeometry(d, id, n, g); err != nil {
		return err
	}

	defl := spring.Deflection{}
	if deflection != 0 {
		defl = spring.DeflectionOf(units.MillimetersToMeters(deflection))
	}

	res, err := spring.Compute(spring.Specification{
		WireDiameter:  units.MillimetersToMeters(d),
		InnerDiameter: units.MillimetersToMeters(id),
		ActiveCoils:   n,
		ShearModulus:  units.GigapascalsToPascals(g),
	}, defl)
	if err != nil {
		return err
	}

	if jsonOutput || cfg.Output == "json" {
		out := map[string]any{
			"rate_n_per_m":      res.Rate,
			"wire_diameter_mm":  d,
			"inner_diameter_mm": id,
			"active_coils":      n,
			"shear_modulus_gpa": g,
		}
		if res.HasForce {
			out["force_n"] = res.Force
			out["deflection_mm"] = deflection
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("k = %.2f N/m\n", res.Rate)
	if res.HasForce {
		fmt.Printf("F = %.2f N\n", res.Force)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	param := sweep.Param(args[0])
	d, err := parseArg("wire diameter", args[1])
	if err != nil {
		return err
	}
	id, err := parseArg("inner diameter", args[2])
	if err != nil {
		return err
	}
	n, err := parseArg("active coils", args[3])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	g, err := resolveModulus(cmd, cfg)
	if err != nil {
		return err
	}

	base := spring.Specification{
		WireDiameter:  units.MillimetersToMeters(d),
		InnerDiameter: units.MillimetersToMeters(id),
		ActiveCoils:   n,
		ShearModulus:  units.GigapascalsToPascals(g),
	}

	from, to, unit := sweepFrom, sweepTo, "mm"
	if !cmd.Flags().Changed("from") || !cmd.Flags().Changed("to") {
		return fmt.Errorf("sweep requires --from and --to")
	}
	if param == sweep.ParamCoils {
		unit = "coils"
	} else {
		from = units.MillimetersToMeters(from)
		to = units.MillimetersToMeters(to)
	}

	points, err := sweep.Run(base, param, from, to, sweepSteps)
	if err != nil {
		return err
	}

	series := export.Series{
		Param:           string(param),
		Unit:            unit,
		WireDiameterMm:  d,
		InnerDiameterMm: id,
		ActiveCoils:     n,
		ShearModulusGPa: g,
		Points:          points,
	}
	if unit == "mm" {
		for i := range series.Points {
			series.Points[i].Value = units.MetersToMillimeters(series.Points[i].Value)
		}
	}

	if outFile != "" {
		if err := export.JSONToFile(outFile, series); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
	}
	if csvOutput {
		return export.WriteCSV(os.Stdout, series)
	}
	if outFile != "" {
		return nil
	}

	rates := make([]float64, len(points))
	for i, p := range points {
		rates[i] = p.Rate
	}
	graph := asciigraph.Plot(rates,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("rate [N/m] vs %s [%s]", param, unit)),
	)
	fmt.Println(graph)
	fmt.Printf("\n%s: %.4g .. %.4g %s, %d samples\n",
		param, series.Points[0].Value, series.Points[len(series.Points)-1].Value, unit, len(points))
	return nil
}

func forceTable(cmd *cobra.Command, args []string) error {
	d, err := parseArg("wire diameter", args[0])
	if err != nil {
		return err
	}
	id, err := parseArg("inner diameter", args[1])
	if err != nil {
		return err
	}
	n, err := parseArg("active coils", args[2])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	g, err := resolveModulus(cmd, cfg)
	if err != nil {
		return err
	}
	if err := spring.ValidateGeometry(d, id, n, g); err != nil {
		return err
	}
	if maxDeflection <= 0 || tableRows < 1 {
		return fmt.Errorf("table needs a positive deflection range and at least one row")
	}

	k, err := spring.Rate(spring.Specification{
		WireDiameter:  units.MillimetersToMeters(d),
		InnerDiameter: units.MillimetersToMeters(id),
		ActiveCoils:   n,
		ShearModulus:  units.GigapascalsToPascals(g),
	})
	if err != nil {
		return err
	}

	fmt.Printf("k = %.2f N/m\n\n", k)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DEFLECTION [mm]\tFORCE [N]")

	step := maxDeflection / float64(tableRows)
	for i := 1; i <= tableRows; i++ {
		mm := step * float64(i)
		f := spring.Force(k, units.MillimetersToMeters(mm))
		fmt.Fprintf(w, "%.2f\t%.2f\n", mm, f)
	}

	return w.Flush()
}

func listMaterials(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tG [GPA]\tDESCRIPTION")

	for _, m := range material.List() {
		fmt.Fprintf(w, "%s\t%.1f\t%s\n", m.Name, m.ShearModulusGPa, m.Description)
	}

	return w.Flush()
}
