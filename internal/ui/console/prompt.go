package console

import (
	"fmt"

	survey "github.com/AlecAivazis/survey/v2"
)

// ConfirmOverwrite asks before replacing an existing file.
func ConfirmOverwrite(path string) (bool, error) {
	ok := false
	if err := survey.AskOne(&survey.Confirm{Message: messageOverwriteConfirm(path), Default: false}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

func messageOverwriteConfirm(path string) string { return fmt.Sprintf("Overwrite %s?", path) }
