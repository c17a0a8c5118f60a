package application

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/yaraqc/yaraqc/internal/domain"
	"github.com/yaraqc/yaraqc/internal/domain/atoms"
	"github.com/yaraqc/yaraqc/internal/domain/lint"
	"github.com/yaraqc/yaraqc/internal/domain/rulesrc"
)

// Mode selects which engine produces the issues. Both modes share all
// structural parsing.
type Mode string

const (
	// ModeLint runs the style/metadata/compatibility catalog plus the
	// external compiler check.
	ModeLint Mode = "lint"
	// ModeAtoms runs the atom-quality engine on every string definition.
	ModeAtoms Mode = "atoms"
)

// AnalyzeService orchestrates the analysis pipeline:
// load config → scan files → read → compile check → extract → engines.
type AnalyzeService struct {
	scanner  domain.RuleFileScanner
	compiler domain.RuleCompiler
	loader   domain.ConfigLoader
	git      domain.GitInfo
}

func NewAnalyzeService(
	scanner domain.RuleFileScanner,
	compiler domain.RuleCompiler,
	loader domain.ConfigLoader,
	git domain.GitInfo,
) *AnalyzeService {
	return &AnalyzeService{
		scanner:  scanner,
		compiler: compiler,
		loader:   loader,
		git:      git,
	}
}

// AnalyzePaths analyzes every rule file under the given paths and returns
// the aggregate report. Config and the optional git stamp are taken from
// root. Per-file failures degrade to AnalysisResult.ParseError; only
// config and scan failures abort the run.
func (s *AnalyzeService) AnalyzePaths(root string, paths []string, mode Mode) (*domain.RunReport, error) {
	cfg, err := s.loader.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	files, err := s.scanner.Scan(paths, cfg.ExcludePaths...)
	if err != nil {
		return nil, fmt.Errorf("scanning rule files: %w", err)
	}

	engine := lint.NewEngine(cfg)
	quality := atoms.NewQualityEngine(atoms.NewScorer(atoms.DefaultConfig()), cfg)

	report := &domain.RunReport{Timestamp: time.Now()}
	for _, f := range files {
		report.Results = append(report.Results, s.analyzeFile(cfg, engine, quality, f, mode))
	}
	report.Tally()

	if s.git != nil && s.git.IsGitRepo(root) {
		if hash, err := s.git.CommitHash(root); err == nil {
			report.CommitHash = hash
		}
	}

	return report, nil
}

// AnalyzeFile analyzes a single rule file with config loaded from root.
func (s *AnalyzeService) AnalyzeFile(root, path string, mode Mode) (*domain.AnalysisResult, error) {
	cfg, err := s.loader.Load(root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	engine := lint.NewEngine(cfg)
	quality := atoms.NewQualityEngine(atoms.NewScorer(atoms.DefaultConfig()), cfg)
	res := s.analyzeFile(cfg, engine, quality, path, mode)
	return &res, nil
}

func (s *AnalyzeService) analyzeFile(
	cfg domain.Config,
	engine *lint.Engine,
	quality *atoms.QualityEngine,
	path string,
	mode Mode,
) domain.AnalysisResult {
	res := domain.AnalysisResult{FilePath: path, Issues: []domain.Issue{}}

	data, err := s.scanner.Read(path)
	if err != nil {
		res.ParseError = err.Error()
		return res
	}
	if !utf8.Valid(data) {
		res.ParseError = "invalid UTF-8 encoding"
		return res
	}
	src := string(data)

	// Compilation failure is one issue, never a reason to stop: the
	// structural checks still run on the raw text.
	if mode == ModeLint && s.compiler != nil && s.compiler.Available() {
		if ce := s.compiler.Compile(path); ce != nil {
			if sev, enabled := cfg.Resolve("compile-error", domain.SeverityError); enabled {
				res.Issues = append(res.Issues, domain.Issue{
					Rule:     domain.CompilationScope,
					Severity: sev,
					Code:     "compile-error",
					Message:  ce.Message,
					Line:     ce.Line,
				})
			}
		}
	}

	for _, rule := range rulesrc.Extract(src) {
		switch mode {
		case ModeAtoms:
			res.Issues = append(res.Issues, quality.Check(rule)...)
		default:
			res.Issues = append(res.Issues, engine.Check(rule)...)
		}
	}

	return res
}
