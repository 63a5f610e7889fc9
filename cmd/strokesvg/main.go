// Command strokesvg renders a recorded pen stroke as an SVG document.
//
// The stroke is read from a YAML (or JSON) file of samples:
//
//	samples:
//	  - {x: 0, y: 0, width: 2}
//	  - {x: 10, y: 0, width: 4}
//
// See the reference config at the end of this file for the settings that
// can be passed with -conf.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/penstroke/outline"
	"github.com/penstroke/outline/svgdoc"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Conf struct {
	XMLHeader           bool
	PreserveAspectRatio bool
	Padding             float64 // added around the stroke on every side
	Precision           int     // digits after the decimal point, 0 for shortest exact
	Fill                string
	Template            string // path to a document template, empty for the built-in one
	Offset              Offset
}

type Offset struct {
	X, Y float64
}

func defaultConf() Conf {
	return Conf{
		XMLHeader:           true,
		PreserveAspectRatio: true,
		Fill:                "black",
	}
}

var (
	confFlag    = flag.String("conf", "", "config file")
	inFlag      = flag.String("in", "", "sample file")
	outFlag     = flag.String("out", "", "output file, stdout if empty")
	sizeFlag    = flag.Bool("size", false, "print the intrinsic size of the document to stderr")
	verboseFlag = flag.Bool("v", false, "debug logging")
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	flag.Parse()
	if *verboseFlag {
		outline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *inFlag == "" {
		log.Fatal("missing -in")
	}
	c, err := loadConf(*confFlag)
	if err != nil {
		log.Fatal(err)
	}
	f, err := os.Open(*inFlag)
	if err != nil {
		log.Fatal(err)
	}
	samples, err := loadSamples(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}
	doc, err := render(c, samples)
	if err != nil {
		log.Fatal(err)
	}
	if *sizeFlag {
		if size, ok := svgdoc.IntrinsicSize(doc); ok {
			fmt.Fprintln(os.Stderr, size)
		} else {
			fmt.Fprintln(os.Stderr, "no intrinsic size")
		}
	}
	if *outFlag == "" {
		_, err = io.WriteString(os.Stdout, doc)
	} else {
		err = os.WriteFile(*outFlag, []byte(doc), 0o644)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// loadConf reads the config file at path over the defaults. An empty path
// yields the defaults.
func loadConf(path string) (Conf, error) {
	c := defaultConf()
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Conf{}, errors.Wrap(err, "failed to decode config file")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Conf{}, errors.Errorf("unknown config keys: %v", undecoded)
	}
	return c, nil
}

type penSample struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"width"`
}

func (s penSample) Pos() outline.Point { return outline.Pt(s.X, s.Y) }
func (s penSample) Width() float64     { return s.W }

type sampleFile struct {
	Samples []penSample `yaml:"samples"`
}

// loadSamples decodes a sample file. JSON is accepted as well, being a
// subset of YAML.
func loadSamples(r io.Reader) ([]penSample, error) {
	var f sampleFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to decode samples")
	}
	for i, s := range f.Samples {
		if s.W < 0 {
			return nil, errors.Errorf("sample %d: negative width %v", i, s.W)
		}
	}
	return f.Samples, nil
}

// render strokes the samples and wraps the outline in a document sized to
// its control box.
func render(c Conf, samples []penSample) (string, error) {
	composer := svgdoc.Default()
	if c.Template != "" {
		b, err := os.ReadFile(c.Template)
		if err != nil {
			return "", errors.Wrap(err, "failed to read template")
		}
		tmpl, err := svgdoc.ParseTemplate(string(b))
		if err != nil {
			return "", err
		}
		composer = svgdoc.NewComposer(tmpl)
	}

	o := outline.StrokeOutline(samples, outline.Vec(c.Offset.X, c.Offset.Y))
	body := svgdoc.PathElement(o, c.Fill, outline.SVGOptions{MaxPrecision: c.Precision})

	var bounds *outline.Rect
	if len(o) > 0 {
		r := o.ControlBox().Inflate(c.Padding, c.Padding)
		bounds = &r
	}
	doc, err := composer.Compose(body, bounds, bounds, c.XMLHeader, c.PreserveAspectRatio)
	if err != nil {
		return "", errors.Wrap(err, "failed to compose document")
	}
	return doc, nil
}

// Reference Conf
//XMLHeader = true
//PreserveAspectRatio = true
//Padding = 1.0
//Precision = 3
//Fill = "#1a1a1a"
//Template = "page.svg.tmpl"

//[Offset]
//X = 0.0
//Y = 0.0
