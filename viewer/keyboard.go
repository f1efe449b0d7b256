package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/akmonengine/sierpinski"
)

var keyCommands = []struct {
	key ebiten.Key
	cmd sierpinski.Command
}{
	{ebiten.KeyArrowUp, sierpinski.LevelUp},
	{ebiten.KeyEqual, sierpinski.LevelUp},
	{ebiten.KeyNumpadAdd, sierpinski.LevelUp},
	{ebiten.KeyArrowDown, sierpinski.LevelDown},
	{ebiten.KeyMinus, sierpinski.LevelDown},
	{ebiten.KeyNumpadSubtract, sierpinski.LevelDown},
}

// pollCommands returns the commands of keys pressed since the last tick
func pollCommands() []sierpinski.Command {
	var cmds []sierpinski.Command
	for _, kc := range keyCommands {
		if inpututil.IsKeyJustPressed(kc.key) {
			cmds = append(cmds, kc.cmd)
		}
	}

	return cmds
}

func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
