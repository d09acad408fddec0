package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/goseismic/internal/asce"
	"github.com/alexiusacademia/goseismic/internal/seismic"
	"github.com/alexiusacademia/goseismic/internal/units"
	"github.com/spf13/cobra"
)

// inputFlags are the building input flags shared by calc, spectrum and report.
type inputFlags struct {
	file        string
	storiesXLSX string
	stories     []string

	ss     float64
	s1     float64
	tl     float64
	site   string
	r      float64
	omega  float64
	rho    float64
	ie     float64
	system string
	unit   string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	def := seismic.DefaultInput()

	// Input sources
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Path to input JSON file")
	cmd.Flags().StringVar(&f.storiesXLSX, "stories-xlsx", "", "Import stories from an .xlsx sheet (height, weight, name)")
	cmd.Flags().StringArrayVar(&f.stories, "story", nil, "Story as height:weight[:name], bottom to top (repeatable)")

	// Site hazard
	cmd.Flags().Float64Var(&f.ss, "ss", 0, "Mapped short-period spectral acceleration Ss (g)")
	cmd.Flags().Float64Var(&f.s1, "s1", 0, "Mapped 1-second spectral acceleration S1 (g)")
	cmd.Flags().Float64Var(&f.tl, "tl", def.TL, "Long-period transition period TL (s)")
	cmd.Flags().StringVar(&f.site, "site", def.SiteClass.String(), "Site class (A-F)")

	// Structural system
	cmd.Flags().Float64Var(&f.r, "r", def.R, "Response modification coefficient R")
	cmd.Flags().Float64Var(&f.omega, "omega", def.Omega0, "Overstrength factor Ω0")
	cmd.Flags().Float64Var(&f.rho, "rho", def.Rho, "Redundancy factor ρ")
	cmd.Flags().Float64Var(&f.ie, "ie", def.Ie, "Importance factor Ie")
	cmd.Flags().StringVar(&f.system, "system", def.StructureType.String(),
		"Structural system ("+strings.Join(structureTypeNames(), ", ")+")")
	cmd.Flags().StringVarP(&f.unit, "unit", "u", "", "Result unit (kN, Ton, kg) [default from GOSEISMIC_UNIT or kN]")
}

// build assembles the calculation input. Values from --file are kept unless
// the corresponding flag is given explicitly.
func (f *inputFlags) build(cmd *cobra.Command) (seismic.Input, error) {
	in := seismic.DefaultInput()
	if appConfig != nil {
		in.Unit = appConfig.DefaultUnit()
	}

	fromFile := f.file != ""
	if fromFile {
		logger.Printf("loading input from %s", f.file)
		loaded, err := seismic.LoadFromFile(f.file)
		if err != nil {
			return in, err
		}
		in = *loaded
	}

	set := func(name string) bool {
		return !fromFile || cmd.Flags().Changed(name)
	}

	if set("ss") {
		in.Ss = f.ss
	}
	if set("s1") {
		in.S1 = f.s1
	}
	if set("tl") {
		in.TL = f.tl
	}
	if set("r") {
		in.R = f.r
	}
	if set("omega") {
		in.Omega0 = f.omega
	}
	if set("rho") {
		in.Rho = f.rho
	}
	if set("ie") {
		in.Ie = f.ie
	}
	if set("site") {
		class, err := asce.ParseSiteClass(f.site)
		if err != nil {
			return in, err
		}
		in.SiteClass = class
	}
	if set("system") {
		st, err := asce.ParseStructureType(f.system)
		if err != nil {
			return in, err
		}
		in.StructureType = st
	}
	if f.unit != "" {
		u, err := units.Parse(f.unit)
		if err != nil {
			return in, err
		}
		in.Unit = u
	}

	var stories []seismic.Story
	if f.storiesXLSX != "" {
		logger.Printf("importing stories from %s", f.storiesXLSX)
		imported, err := seismic.LoadStoriesXLSX(f.storiesXLSX)
		if err != nil {
			return in, err
		}
		stories = append(stories, imported...)
	}
	for _, arg := range f.stories {
		s, err := seismic.ParseStory(arg)
		if err != nil {
			return in, err
		}
		stories = append(stories, s)
	}
	if len(stories) > 0 {
		in.Stories = stories
	}

	logger.Printf("input: %d stories, site class %s, %s", len(in.Stories), in.SiteClass, in.StructureType)
	return in, in.Validate()
}

// calculate builds the input and runs the engine, printing any failure.
// It returns nil when the calculation did not produce a result.
func calculate(cmd *cobra.Command, f *inputFlags) *seismic.CalculationResult {
	in, err := f.build(cmd)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil
	}

	switch out := engine.Run(in).(type) {
	case *seismic.CalculationResult:
		return out
	case *seismic.ErrorResult:
		fmt.Printf("Error: %s\n", out.Message)
	}
	return nil
}

// outputPath resolves relative export paths against GOSEISMIC_OUTPUT_DIR.
func outputPath(p string) string {
	if p == "" || filepath.IsAbs(p) || appConfig == nil {
		return p
	}
	return filepath.Join(appConfig.OutputDir, p)
}

func structureTypeNames() []string {
	var names []string
	for _, st := range asce.StructureTypes() {
		names = append(names, st.String())
	}
	return names
}
