package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/sceneloop/loop"
	"github.com/plus3/sceneloop/scene"
)

type Report struct {
	// Configuration
	Demo        string
	SceneId     string
	Seed        uint64
	Interval    time.Duration
	FrameLimit  uint64
	TimeLimit   time.Duration
	Fingerprint uint64

	// Results
	TotalTime     time.Duration
	FrameTime     Stats
	Loop          loop.Stats
	Scene         scene.Stats
	Segments      int
	Dots          int
	Culled        int
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Scene Loop Report

## Run
- **Demo:** {{.Demo}} ({{.SceneId}})
- **Seed:** {{.Seed}}
- **Frame Interval:** {{.Interval}}
- **Frame Limit:** {{if .FrameLimit}}{{.FrameLimit}}{{else}}none{{end}}
- **Time Limit:** {{if .TimeLimit}}{{.TimeLimit}}{{else}}none{{end}}
- **Initial Fingerprint:** {{hex .Fingerprint}}

## Scene
- **Objects:** {{.Scene.ObjectCount}} ({{.Scene.AnimatedCount}} animated, {{.Scene.DecorationCount}} decorations)
- **Lights:** {{.Scene.LightCount}}
{{- range .Scene.ShapeBreakdown}}
  - {{.Kind}}: {{.Count}}
{{- end}}

## Results
- **Frames:** {{.Loop.Frames}}
- **Total Time:** {{.TotalTime}}
- **Frame Interval (measured):**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}
- **Last Frame:** {{.Segments}} segments, {{.Dots}} dots, {{.Culled}} culled

## Systems
| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Loop.Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"hex": func(v uint64) string {
			return fmt.Sprintf("%016x", v)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
