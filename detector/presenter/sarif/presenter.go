package sarif

import (
	"fmt"
	"io"
	"strings"

	"github.com/owenrumney/go-sarif/sarif"

	"github.com/degrootsam/shai-hulud-detector/detector/match"
	"github.com/degrootsam/shai-hulud-detector/detector/presenter/models"
	"github.com/degrootsam/shai-hulud-detector/internal/version"
)

// Presenter holds the data for generating a report and implements the presenter.Presenter interface
type Presenter struct {
	config models.PresenterConfig
}

// NewPresenter is a *Presenter constructor
func NewPresenter(config models.PresenterConfig) *Presenter {
	return &Presenter{
		config: config,
	}
}

// Present creates a SARIF-based report
func (pres *Presenter) Present(output io.Writer) error {
	doc, err := pres.toSarifReport()
	if err != nil {
		return err
	}
	err = doc.PrettyWrite(output)
	return err
}

// toSarifReport outputs a sarif report object
func (pres *Presenter) toSarifReport() (*sarif.Report, error) {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, err
	}

	v := version.FromBuild().Version
	if v == "[not provided]" {
		// Need a semver to pass the MS SARIF validator
		v = "0.0.0-dev"
	}

	doc.AddRun(&sarif.Run{
		Tool: sarif.Tool{
			Driver: &sarif.ToolComponent{
				Name:           "Shai-Hulud Detector",
				Version:        sp(v),
				InformationURI: sp("https://github.com/degrootsam/shai-hulud-detector"),
				Rules:          pres.sarifRules(),
			},
		},
		Results: pres.sarifResults(),
	})

	return doc, nil
}

// sarifRules generates the set of rules to include in this run
func (pres *Presenter) sarifRules() (out []*sarif.ReportingDescriptor) {
	if pres.config.Matches.Count() > 0 {
		ruleIDs := map[string]bool{}

		for _, m := range pres.config.Matches.Sorted() {
			ruleID := pres.ruleID(m)
			if ruleIDs[ruleID] {
				continue
			}

			ruleIDs[ruleID] = true

			out = append(out, &sarif.ReportingDescriptor{
				ID:      ruleID,
				Name:    sp(ruleName(m)),
				HelpURI: sp("https://github.com/degrootsam/shai-hulud-detector"),
				// Title of the SARIF report
				ShortDescription: &sarif.MultiformatMessageString{
					Text: sp(pres.shortDescription(m)),
				},
				// Subtitle of the SARIF report
				FullDescription: &sarif.MultiformatMessageString{
					Text: sp(pres.subtitle(m)),
				},
				Help: pres.helpText(m),
			})
		}
	}
	return out
}

// ruleID creates a unique rule ID for a given match
func (pres *Presenter) ruleID(m match.Match) string {
	return fmt.Sprintf("watchlist-%s-%s", m.Package, m.Version)
}

// helpText gets the help text for a rule, this is displayed in GitHub if you click on the title in a list of findings
func (pres *Presenter) helpText(m match.Match) *sarif.MultiformatMessageString {
	repositories := strings.Join(m.RepositoryNames(), ", ")
	text := fmt.Sprintf("Watched Package: %s\nVersion: %s\nRepositories: %s",
		m.Package, m.Version, repositories,
	)
	markdown := fmt.Sprintf(
		"**Watched Package: %s**\n"+
			"| Version | Repositories |\n"+
			"| --- | --- |\n"+
			"| %s  | %s  |\n",
		m.Package, m.Version, repositories,
	)
	return &sarif.MultiformatMessageString{
		Text:     &text,
		Markdown: &markdown,
	}
}

// locations the locations array is a single "physical" location with a logical location per repository
func (pres *Presenter) locations(m match.Match, repository string) []*sarif.Location {
	logicalLocations := []*sarif.LogicalLocation{
		{
			FullyQualifiedName: sp(fmt.Sprintf("%s:%s@%s", repository, m.Package, m.Version)),
			Name:               sp(m.Package),
		},
	}

	return []*sarif.Location{
		{
			PhysicalLocation: &sarif.PhysicalLocation{
				ArtifactLocation: &sarif.ArtifactLocation{
					URI: sp(fmt.Sprintf("%s/package.json", repository)),
				},
				// the dependency graph carries no line information for a package entry
				Region: &sarif.Region{
					StartLine:   ip(1),
					StartColumn: ip(1),
					EndLine:     ip(1),
					EndColumn:   ip(1),
				},
			},
			LogicalLocations: logicalLocations,
		},
	}
}

// subtitle generates a subtitle for the given match
func (pres *Presenter) subtitle(m match.Match) string {
	return fmt.Sprintf("Version %s is at or below a watch-listed release and may be compromised.", m.Version)
}

func (pres *Presenter) shortDescription(m match.Match) string {
	return fmt.Sprintf("%s@%s is on the watch list", m.Package, m.Version)
}

func (pres *Presenter) sarifResults() []*sarif.Result {
	out := make([]*sarif.Result, 0) // make sure we have at least an empty array
	for _, m := range pres.config.Matches.Sorted() {
		for _, repository := range m.RepositoryNames() {
			out = append(out, &sarif.Result{
				RuleID:    sp(pres.ruleID(m)),
				Message:   pres.resultMessage(m, repository),
				Locations: pres.locations(m, repository),
			})
		}
	}
	return out
}

// ip returns an int pointer based on the provided value
func ip(i int) *int {
	return &i
}

// sp returns a string pointer based on the provided value
func sp(sarif string) *string {
	return &sarif
}

func (pres *Presenter) resultMessage(m match.Match, repository string) sarif.Message {
	message := fmt.Sprintf("The repository %s reports %s at version %s, which is at or below a watch-listed release", repository, m.Package, m.Version)

	return sarif.Message{Text: &message}
}

func ruleName(m match.Match) string {
	var sb strings.Builder
	for _, segment := range strings.FieldsFunc(m.Package, func(r rune) bool {
		return r == '-' || r == '_' || r == '/' || r == '@' || r == '.'
	}) {
		if len(segment) > 0 {
			sb.WriteString(strings.ToUpper(segment[:1]) + segment[1:])
		}
	}
	sb.WriteString("WatchlistHit")
	return sb.String()
}
