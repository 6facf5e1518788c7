package run

import (
	"fmt"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
)

const (
	interpreterConfigurationKeyConstant         = "interpreter"
	workingDirectoryConfigurationKeyConstant    = "working_directory"
	preferPowerShellConfigurationKeyConstant    = "prefer_powershell_on_windows"
	exitCodeSeverityConfigurationKeyConstant    = "exit_code_severity"
	configurationKeyTemplateConstant            = "%s.%s"
	profileNotFoundTemplateConstant             = "profile %q is not configured"
	profileDecodeErrorTemplateConstant          = "profile %q is invalid: %w"
	profileDecoderCreationErrorTemplateConstant = "unable to construct profile decoder: %w"
	mapstructureTagNameConstant                 = "mapstructure"
	defaultExitCodeSeverityConstant             = "error"
)

// CommandConfiguration captures persisted defaults for the run command.
type CommandConfiguration struct {
	Interpreter               string         `mapstructure:"interpreter"`
	WorkingDirectory          string         `mapstructure:"working_directory"`
	PreferPowerShellOnWindows bool           `mapstructure:"prefer_powershell_on_windows"`
	ExitCodeSeverity          string         `mapstructure:"exit_code_severity"`
	Profiles                  map[string]any `mapstructure:"profiles"`
}

// ProfileConfiguration holds a named set of overrides applied on top of CommandConfiguration.
type ProfileConfiguration struct {
	Interpreter               string `mapstructure:"interpreter"`
	WorkingDirectory          string `mapstructure:"working_directory"`
	PreferPowerShellOnWindows *bool  `mapstructure:"prefer_powershell_on_windows"`
}

// DefaultCommandConfiguration returns baseline values for the run command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		PreferPowerShellOnWindows: true,
		ExitCodeSeverity:          defaultExitCodeSeverityConstant,
	}
}

// DefaultConfigurationValues exposes the defaults as flat keys beneath prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		fmt.Sprintf(configurationKeyTemplateConstant, prefix, interpreterConfigurationKeyConstant):      defaults.Interpreter,
		fmt.Sprintf(configurationKeyTemplateConstant, prefix, workingDirectoryConfigurationKeyConstant): defaults.WorkingDirectory,
		fmt.Sprintf(configurationKeyTemplateConstant, prefix, preferPowerShellConfigurationKeyConstant): defaults.PreferPowerShellOnWindows,
		fmt.Sprintf(configurationKeyTemplateConstant, prefix, exitCodeSeverityConfigurationKeyConstant): defaults.ExitCodeSeverity,
	}
}

// Profile decodes the named profile. Unknown keys are rejected and scalar values are weakly typed.
func (configuration CommandConfiguration) Profile(profileName string) (ProfileConfiguration, error) {
	trimmedName := strings.TrimSpace(profileName)
	rawProfile, profileExists := lookupProfile(configuration.Profiles, trimmedName)
	if !profileExists {
		return ProfileConfiguration{}, fmt.Errorf(profileNotFoundTemplateConstant, trimmedName)
	}

	var profile ProfileConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &profile,
		TagName:          mapstructureTagNameConstant,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if decoderError != nil {
		return ProfileConfiguration{}, fmt.Errorf(profileDecoderCreationErrorTemplateConstant, decoderError)
	}
	if decodeError := decoder.Decode(rawProfile); decodeError != nil {
		return ProfileConfiguration{}, fmt.Errorf(profileDecodeErrorTemplateConstant, trimmedName, decodeError)
	}

	return profile, nil
}

// ApplyProfile overlays non-empty profile values onto the configuration.
func (configuration CommandConfiguration) ApplyProfile(profile ProfileConfiguration) CommandConfiguration {
	merged := configuration
	if interpreter := strings.TrimSpace(profile.Interpreter); len(interpreter) > 0 {
		merged.Interpreter = interpreter
	}
	if workingDirectory := strings.TrimSpace(profile.WorkingDirectory); len(workingDirectory) > 0 {
		merged.WorkingDirectory = workingDirectory
	}
	if profile.PreferPowerShellOnWindows != nil {
		merged.PreferPowerShellOnWindows = *profile.PreferPowerShellOnWindows
	}
	return merged
}

// viper lowercases keys, so profile names are matched case-insensitively.
func lookupProfile(profiles map[string]any, profileName string) (any, bool) {
	if rawProfile, exists := profiles[profileName]; exists {
		return rawProfile, true
	}
	for candidateName, rawProfile := range profiles {
		if strings.EqualFold(candidateName, profileName) {
			return rawProfile, true
		}
	}
	return nil, false
}
