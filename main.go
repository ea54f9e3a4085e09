package main

import (
	"fmt"
	"os"
	"time"

	"github.com/df07/go-cornell-pathtracer/cmd"
	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-cornell-pathtracer"
	app.Usage = "render the Cornell box using multi-threaded path tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a frame of the selected scene with one worker per core. Progress is
logged periodically and per-worker statistics are displayed when the render
ends. Pressing Ctrl-C stops the workers early; the partial frame is still
saved when an output file is given.`,
			Flags: append(frameFlags(), cli.StringFlag{
				Name:  "out, o",
				Value: "frame.png",
				Usage: "image filename for the rendered frame (empty to skip saving)",
			}),
			Action: cmd.RenderFrame,
		},
		{
			Name:  "serve",
			Usage: "render a frame while serving it over HTTP",
			Description: `
Render a frame of the selected scene and serve snapshots of the frame buffer
at /api/frame and progress reports at /api/progress while it converges.
Ctrl-C or a POST to /api/stop ends the render and the server.`,
			Flags: append(frameFlags(),
				cli.StringFlag{
					Name:  "addr",
					Value: "localhost:8080",
					Usage: "address to listen on",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the final frame",
				},
			),
			Action: cmd.Serve,
		},
		{
			Name:   "scenes",
			Usage:  "list available scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

// Flags shared by every command that renders a frame. Zero frame settings
// use the scene's recommended values.
func frameFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "scene, s",
			Value: "cornell",
			Usage: "scene to render (see the scenes command)",
		},
		cli.IntFlag{
			Name:  "width",
			Usage: "frame width",
		},
		cli.IntFlag{
			Name:  "height",
			Usage: "frame height",
		},
		cli.IntFlag{
			Name:  "spp",
			Usage: "samples per pixel",
		},
		cli.IntFlag{
			Name:  "depth",
			Usage: "number of bounces after which paths return emission only",
		},
		cli.IntFlag{
			Name:  "workers",
			Usage: "number of render workers (default: one per physical core)",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: 42,
			Usage: "base random seed; worker i uses seed+i",
		},
		cli.Float64Flag{
			Name:  "vfov",
			Usage: "override the camera's vertical field of view in degrees",
		},
		cli.Float64Flag{
			Name:  "aperture",
			Usage: "override the camera's lens aperture",
		},
		cli.Float64Flag{
			Name:  "focus-dist",
			Usage: "override the camera's focus distance",
		},
		cli.Float64Flag{
			Name:  "shutter-open",
			Usage: "override the time the shutter opens",
		},
		cli.Float64Flag{
			Name:  "shutter-close",
			Usage: "override the time the shutter closes",
		},
		cli.DurationFlag{
			Name:  "report-interval",
			Value: 2 * time.Second,
			Usage: "how often render progress is logged (0 to disable)",
		},
	}
}
