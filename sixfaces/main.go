//go:build darwin || linux || windows

// Sixfaces draws the six configurable triangles as the faces of a half
// octahedron.  Dragging horizontally spins the model.
//
// Build an Android APK with the gomobile tool.
//
//	$ gomobile build github.com/bmatsuo/mobile-gl-shapes/sixfaces
//
// Or run it on the desktop, choosing which triangles to draw.
//
//	$ go run ./sixfaces --tags 1,3,5 --log-level debug
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"golang.org/x/mobile/app"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
	"golang.org/x/mobile/event/touch"
	"golang.org/x/mobile/exp/app/debug"
	"golang.org/x/mobile/exp/f32"
	"golang.org/x/mobile/exp/gl/glutil"
	"golang.org/x/mobile/gl"

	"github.com/bmatsuo/mobile-gl-shapes/f32hack"
	"github.com/bmatsuo/mobile-gl-shapes/triangle"
)

// radians of spin per pixel dragged
const dragSpeed = 0.01

type scene struct {
	variants []triangle.Variant
	showFPS  bool

	images    *glutil.Images
	fps       *debug.FPS
	triangles []*triangle.Triangle

	projection f32.Mat4
	view       f32.Mat4
	model      f32.Mat4
	mvp        f32.Mat4
	viewEye    f32.Vec3
	viewCenter f32.Vec3
	viewUp     f32.Vec3

	yaw    f32.Radian
	touchX float32
}

func main() {
	conf := NewDefaultConfig()
	conf.AddFlags(pflag.CommandLine)
	pflag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	lvl, err := conf.Level()
	if err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(lvl)

	variants, err := conf.Variants()
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	s := &scene{
		variants:   variants,
		showFPS:    conf.ShowFPS,
		viewEye:    f32.Vec3{1.5, 1, 1.5},
		viewCenter: f32.Vec3{0, 0.15, 0},
		viewUp:     f32.Vec3{0, 1, 0},
	}

	app.Main(func(a app.App) {
		var glctx gl.Context
		var sz size.Event
		for e := range a.Events() {
			switch e := a.Filter(e).(type) {
			case lifecycle.Event:
				switch e.Crosses(lifecycle.StageVisible) {
				case lifecycle.CrossOn:
					glctx, _ = e.DrawContext.(gl.Context)
					if err := s.start(glctx); err != nil {
						log.Error().Err(err).Msg("failed to start scene")
						s.stop()
						glctx = nil
						continue
					}
					a.Send(paint.Event{})
				case lifecycle.CrossOff:
					s.stop()
					glctx = nil
				}
			case size.Event:
				sz = e
				log.Debug().Int("width", sz.WidthPx).Int("height", sz.HeightPx).Msg("resized")
			case paint.Event:
				if glctx == nil || e.External {
					// As we are actively painting as fast as
					// we can (usually 60 FPS), skip any paint
					// events sent by the system.
					continue
				}
				s.paint(glctx, sz)
				a.Publish()
				// Drive the animation by preparing to paint the next frame
				// after this one is shown.
				a.Send(paint.Event{})
			case touch.Event:
				s.touch(e)
			}
		}
	})
}

func (s *scene) start(glctx gl.Context) error {
	for _, v := range s.variants {
		t, err := triangle.New(glctx, v)
		if err != nil {
			return err
		}
		log.Debug().Stringer("variant", v).Msg("triangle ready")
		s.triangles = append(s.triangles, t)
	}

	// Initialize the depth buffer to make sure faces render correctly according to Z
	glctx.Enable(gl.DEPTH_TEST)
	glctx.DepthFunc(gl.LESS)

	if s.showFPS {
		s.images = glutil.NewImages(glctx)
		s.fps = debug.NewFPS(s.images)
	}
	log.Info().Int("triangles", len(s.triangles)).Msg("scene started")
	return nil
}

func (s *scene) stop() {
	for _, t := range s.triangles {
		t.Release()
	}
	s.triangles = nil
	if s.fps != nil {
		s.fps.Release()
		s.fps = nil
	}
	if s.images != nil {
		s.images.Release()
		s.images = nil
	}
	log.Info().Msg("scene stopped")
}

func (s *scene) touch(e touch.Event) {
	switch e.Type {
	case touch.TypeBegin:
		s.touchX = e.X
	case touch.TypeMove:
		s.yaw += f32.Radian((e.X - s.touchX) * dragSpeed)
		s.touchX = e.X
	}
}

func (s *scene) paint(glctx gl.Context, sz size.Event) {
	glctx.ClearColor(1, 1, 1, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(1)
	if sz.HeightPx > 0 {
		aspect = float32(sz.WidthPx) / float32(sz.HeightPx)
	}
	f32hack.SetPerspective(&s.projection, f32.Radian(0.8), aspect, 0.1, 100)
	f32hack.LookAt(&s.view, &s.viewEye, &s.viewCenter, &s.viewUp)
	f32hack.RotateY(&s.model, s.yaw)

	mvp := f32hack.MVP(&s.mvp, &s.projection, &s.view, &s.model)
	for _, t := range s.triangles {
		t.Draw(mvp)
	}

	if s.fps != nil {
		s.fps.Draw(sz)
	}
}
