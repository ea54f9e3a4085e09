package cmd

import (
	"bytes"

	"github.com/df07/go-cornell-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the registered scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	writeSceneTable(&buf)
	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}

func writeSceneTable(buf *bytes.Buffer) {
	table := tablewriter.NewWriter(buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Name", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.ID, info.DisplayName, info.Description})
	}

	table.Render()
}
