package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cveillard/radiant/imp"
	"github.com/cveillard/radiant/session"
)

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Drive an enhancement session interactively.",
	Long: `Run an interactive session: load an image, pick a method, apply it,
then save the result or build a report. Type "help" for the command list.`,
	Run: func(cmd *cobra.Command, args []string) {
		runShell(os.Stdin)
	},
}

const shellHelp = `commands:
  load PATH       load a grayscale image
  method NAME     select an enhancement method (equalize, gamma, gamma-contrast)
  gamma VALUE     set the gamma parameter
  apply           run the selected method
  save [PATH]     save the enhanced image
  report [PATH]   write the PDF report for all applied methods
  status          show the session state
  help            show this message
  quit            leave the shell`

type shell struct {
	sess     *session.Session
	method   imp.Method
	selected bool
	gamma    float64
}

func runShell(in *os.File) {
	sh := &shell{
		sess:  session.New(),
		gamma: imp.DefaultGamma,
	}

	sc := bufio.NewScanner(in)
	fmt.Print("> ")
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) > 0 {
			if fields[0] == "quit" || fields[0] == "exit" {
				return
			}
			if err := sh.eval(fields[0], fields[1:]); err != nil {
				fmt.Println("error:", err)
			}
		}
		fmt.Print("> ")
	}
}

func (sh *shell) eval(cmd string, args []string) error {
	switch cmd {
	case "load":
		if len(args) != 1 {
			return fmt.Errorf("usage: load PATH")
		}
		if err := sh.sess.Load(args[0]); err != nil {
			return err
		}
		fmt.Println("Loaded", sh.sess.Name())
		return nil

	case "method":
		if len(args) != 1 {
			return fmt.Errorf("usage: method NAME")
		}
		m, err := imp.ParseMethod(args[0])
		if err != nil {
			return err
		}
		if err := sh.sess.Select(m, sh.gamma); err != nil {
			return err
		}
		sh.method, sh.selected = m, true
		fmt.Println("Selected", m)
		return nil

	case "gamma":
		if len(args) != 1 {
			return fmt.Errorf("usage: gamma VALUE")
		}
		g, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return err
		}
		if g <= 0 {
			return fmt.Errorf("gamma should be positive, got %g", g)
		}
		sh.gamma = g
		if sh.selected {
			return sh.sess.Select(sh.method, sh.gamma)
		}
		return nil

	case "apply":
		if err := sh.sess.Apply(); err != nil {
			return err
		}
		res, _ := sh.sess.Current()
		fmt.Println("Applied", res.Label())
		return nil

	case "save":
		path := ""
		if len(args) > 0 {
			path = args[0]
		} else if res, ok := sh.sess.Current(); ok {
			path = fmt.Sprintf("%s_%s.png", sh.sess.Name(), res.Method.Slug())
		}
		if err := sh.sess.SaveImage(path); err != nil {
			return err
		}
		fmt.Println("Saved", path)
		return nil

	case "report":
		path := ""
		if len(args) > 0 {
			path = args[0]
		} else if sh.sess.Name() != "" {
			path = sh.sess.Name() + "_report.pdf"
		}
		if err := sh.sess.WriteReport(path); err != nil {
			return err
		}
		fmt.Println("Report saved:", path)
		return nil

	case "status":
		fmt.Println("state: ", sh.sess.State())
		if sh.sess.Name() != "" {
			fmt.Println("image: ", sh.sess.Name())
		}
		if sh.selected {
			fmt.Println("method:", sh.method.Label(sh.gamma))
		}
		for _, res := range sh.sess.Results() {
			fmt.Println("result:", res.Label())
		}
		return nil

	case "help":
		fmt.Println(shellHelp)
		return nil
	}
	return fmt.Errorf("unknown command %q (try \"help\")", cmd)
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
