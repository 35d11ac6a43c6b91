package progress

import (
	"github.com/julianstephens/studylit/internal/cli"
	"github.com/julianstephens/studylit/internal/models"
)

type SubjectsCmd struct{}

func (c *SubjectsCmd) Run(ctx *cli.Context) error {
	for _, s := range models.Subjects() {
		ctx.Printf("%-10s %s %s\n", s.ID, s.Emoji, s.Name)
	}
	return nil
}
