package display

import (
	"fmt"
	"os"

	"github.com/backmassage/webmpress/internal/term"
)

// PrintBanner prints the ASCII art banner; magenta when colors are enabled.
func PrintBanner() {
	fmt.Fprint(os.Stdout, term.Magenta(` __        __   _     __  __
 \ \      / /__| |__ |  \/  |_ __  _ __ ___  ___ ___
  \ \ /\ / / _ \ '_ \| |\/| | '_ \| '__/ _ \/ __/ __|
   \ V  V /  __/ |_) | |  | | |_) | | |  __/\__ \__ \
    \_/\_/ \___|_.__/|_|  |_| .__/|_|  \___||___/___/
                            |_|
`))
	fmt.Fprintln(os.Stdout)
}
