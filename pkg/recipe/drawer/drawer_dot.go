package drawer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"text/template"
	"time"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/w-029/DP-TemplatePattern/pkg/recipe/measure"
	"github.com/w-029/DP-TemplatePattern/pkg/recipe/model"
)

var stepShapes = map[string]string{
	string(model.FixedStepType):     "box",
	string(model.DelegatedStepType): "ellipse",
	string(model.OptionalStepType):  "diamond",
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// DOTDrawer is a drawer that writes the recipe graph in the graphviz DOT format.
type DOTDrawer struct {
	mu     sync.Mutex
	graph  graph.Graph[string, string]
	output func() (io.WriteCloser, error)
}

// NewDOTDrawer creates a new DOT drawer writing to w.
func NewDOTDrawer(w io.Writer) *DOTDrawer {
	return newDOTDrawer(func() (io.WriteCloser, error) {
		return nopWriteCloser{w}, nil
	})
}

// NewDOTFileDrawer creates a new DOT drawer writing to the file fileName.
func NewDOTFileDrawer(fileName string) *DOTDrawer {
	return newDOTDrawer(func() (io.WriteCloser, error) {
		file, err := os.Create(fileName)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to create file %s", fileName)
		}

		return file, nil
	})
}

func newDOTDrawer(output func() (io.WriteCloser, error)) *DOTDrawer {
	return &DOTDrawer{
		graph:  graph.New(graph.StringHash, graph.Directed()),
		output: output,
	}
}

// AddStep adds a step to the recipe graph.
func (d *DOTDrawer) AddStep(step *model.StepInfo) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := d.graph.AddVertex(step.ID(), graph.VertexAttribute("shape", stepShapes[string(step.Type)]))
	if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
		return errors.Wrap(err, "unable to add vertex")
	}

	return nil
}

// AddLink adds a link between two executed steps.
func (d *DOTDrawer) AddLink(parentStepID, childStepID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := d.graph.AddEdge(parentStepID, childStepID)
	if errors.Is(err, graph.ErrEdgeAlreadyExists) {
		// the same link may have been skipped by another preparation
		err = d.graph.UpdateEdge(parentStepID, childStepID,
			graph.EdgeAttribute("style", "solid"),
			graph.EdgeAttribute("label", ""),
		)
	}
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentStepID, childStepID)
	}

	return nil
}

// AddSkippedLink adds a dashed link towards a step that was not executed.
func (d *DOTDrawer) AddSkippedLink(parentStepID, childStepID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := d.graph.AddEdge(parentStepID, childStepID,
		graph.EdgeAttribute("style", "dashed"),
		graph.EdgeAttribute("label", "skipped"),
	)
	if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentStepID, childStepID)
	}

	return nil
}

// Draw writes the recipe graph.
func (d *DOTDrawer) Draw() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	wrt, err := d.output()
	if err != nil {
		return err
	}

	err = dot(d.graph, wrt)
	if err != nil {
		_ = wrt.Close()

		return errors.Wrap(err, "unable to write dot graph")
	}

	return wrt.Close()
}

// SetTotalTime sets the time elapsed since startTime on the step.
func (d *DOTDrawer) SetTotalTime(stepID string, startTime time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, properties, err := d.graph.VertexWithProperties(stepID)
	if err != nil {
		return errors.Wrapf(err, "unable to get %s vertex properties", stepID)
	}

	properties.Attributes["xlabel"] = round(time.Since(startTime)).String()

	return nil
}

const maxRGB = 240

// AddMeasure labels every measured step with its average duration and colours it
// from blue for the fastest step to red for the slowest.
func (d *DOTDrawer) AddMeasure(msr measure.Measure) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	metrics := msr.AllMetrics()
	delete(metrics, model.EndStep.ID())

	var minValue, maxValue time.Duration
	first := true
	for _, mt := range metrics {
		if mt.Count() == 0 {
			continue
		}
		avg := mt.AVGDuration()
		if first || avg < minValue {
			minValue = avg
		}
		if first || avg > maxValue {
			maxValue = avg
		}
		first = false
	}

	for stepID, mt := range metrics {
		_, properties, err := d.graph.VertexWithProperties(stepID)
		if errors.Is(err, graph.ErrVertexNotFound) {
			continue
		}
		if err != nil {
			return errors.Wrap(err, "unable to get vertex properties")
		}

		if mt.Skipped() > 0 {
			properties.Attributes["style"] = "dashed"
		}
		if mt.Count() == 0 {
			properties.Attributes["xlabel"] = fmt.Sprintf("skipped x%d", mt.Skipped())

			continue
		}

		fraction := 1.0
		if maxValue > minValue {
			fraction = float64(mt.AVGDuration()-minValue) / float64(maxValue-minValue)
		}

		colour, err := colors.RGB(uint8(maxRGB*fraction), 0, uint8(maxRGB*(1-fraction))) //nolint
		if err != nil {
			return errors.Wrap(err, "unable to get colour")
		}

		properties.Attributes["color"] = colour.ToHEX().String()
		properties.Attributes["xlabel"] = fmt.Sprintf("%s x%d", mt.AVGDuration(), mt.Count())
	}

	return nil
}

func round(d time.Duration) time.Duration {
	if d > time.Millisecond {
		return d.Round(time.Millisecond)
	}

	return d.Round(time.Microsecond)
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .HTMLAttributes}}{{$k}}={{$v}}, {{end}} {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           string
	Target           string
	SourceAttributes map[string]string
	HTMLAttributes   map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot(gra graph.Graph[string, string], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(gra, options...)
	if err != nil {
		return errors.Wrap(err, "failed to generate DOT description")
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option for the DOT description.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// generateDOT lists vertices and edges in a stable order so the output only depends on the graph content.
func generateDOT(gra graph.Graph[string, string], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "digraph",
		Attributes:   map[string]string{"rankdir": "LR"},
		EdgeOperator: "->",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for _, vertex := range sortedKeys(adjacencyMap) {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		sourceAttributes := make(map[string]string, len(sourceProperties.Attributes))
		htmlAttributes := make(map[string]string)
		for k, v := range sourceProperties.Attributes {
			if k == "xlabel" {
				htmlAttributes["label"] = fmt.Sprintf(`<%s <BR /> <FONT POINT-SIZE="12">%s</FONT>>`, vertex, v)

				continue
			}
			sourceAttributes[k] = v
		}

		desc.Statements = append(desc.Statements, statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceAttributes,
			HTMLAttributes:   htmlAttributes,
		})

		adjacencies := adjacencyMap[vertex]
		for _, adjacency := range sortedKeys(adjacencies) {
			edge := adjacencies[adjacency]
			desc.Statements = append(desc.Statements, statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			})
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return errors.Wrap(err, "failed to parse template")
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
