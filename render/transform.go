package render

import (
	"fmt"
	"regexp"
	"strings"
)

var hooksRe = regexp.MustCompile(`(?m)^HOOKS=\((.*)\)\s*$`)

func transformHooks(conf string, f func([]string) []string) (string, error) {
	m := hooksRe.FindStringSubmatchIndex(conf)
	if m == nil {
		return "", fmt.Errorf("no HOOKS line found in mkinitcpio configuration")
	}
	hooks := strings.Fields(conf[m[2]:m[3]])
	hooks = f(hooks)
	return conf[:m[2]] + strings.Join(hooks, " ") + conf[m[3]:], nil
}

func contains(hooks []string, hook string) bool {
	for _, h := range hooks {
		if h == hook {
			return true
		}
	}
	return false
}

func insertBefore(hooks []string, hook, anchor string) []string {
	if contains(hooks, hook) {
		return hooks
	}
	out := make([]string, 0, len(hooks)+1)
	inserted := false
	for _, h := range hooks {
		if h == anchor && !inserted {
			out = append(out, hook)
			inserted = true
		}
		out = append(out, h)
	}
	if !inserted {
		out = append(out, hook)
	}
	return out
}

func insertAfter(hooks []string, hook, anchor string) []string {
	if contains(hooks, hook) {
		return hooks
	}
	out := make([]string, 0, len(hooks)+1)
	inserted := false
	for _, h := range hooks {
		out = append(out, h)
		if h == anchor && !inserted {
			out = append(out, hook)
			inserted = true
		}
	}
	if !inserted {
		out = append(out, hook)
	}
	return out
}

// WithEncryptHook inserts the encrypt hook before the filesystems hook in a
// mkinitcpio configuration and makes sure keyboard comes before it so the
// passphrase can be typed. Applying it twice is a no-op.
func WithEncryptHook(conf string) (string, error) {
	return transformHooks(conf, func(hooks []string) []string {
		hooks = insertBefore(hooks, "keyboard", "filesystems")
		return insertBefore(hooks, "encrypt", "filesystems")
	})
}

// WithPlymouthHook inserts the plymouth hook after udev so the splash comes
// up before the passphrase prompt. Applying it twice is a no-op.
func WithPlymouthHook(conf string) (string, error) {
	return transformHooks(conf, func(hooks []string) []string {
		return insertAfter(hooks, "plymouth", "udev")
	})
}

var optionsRe = regexp.MustCompile(`(?m)^options\s+(.*)$`)

// WithKernelArg appends an argument to the options line of a boot entry
// unless it is already there
func WithKernelArg(entry, arg string) (string, error) {
	m := optionsRe.FindStringSubmatchIndex(entry)
	if m == nil {
		return "", fmt.Errorf("no options line found in boot entry")
	}
	args := strings.Fields(entry[m[2]:m[3]])
	if contains(args, arg) {
		return entry, nil
	}
	args = append(args, arg)
	return entry[:m[2]] + strings.Join(args, " ") + entry[m[3]:], nil
}

// snapperRetention is the fixed retention policy written into the root
// snapshot configuration
var snapperRetention = [][2]string{
	{"ALLOW_GROUPS", "wheel"},
	{"TIMELINE_CREATE", "yes"},
	{"TIMELINE_LIMIT_HOURLY", "5"},
	{"TIMELINE_LIMIT_DAILY", "7"},
	{"TIMELINE_LIMIT_WEEKLY", "0"},
	{"TIMELINE_LIMIT_MONTHLY", "0"},
	{"TIMELINE_LIMIT_YEARLY", "0"},
	{"NUMBER_LIMIT", "10"},
	{"NUMBER_LIMIT_IMPORTANT", "5"},
}

// WithSnapperRetention rewrites the retention keys of a snapper
// configuration, replacing existing assignments and appending missing ones
func WithSnapperRetention(conf string) string {
	for _, kv := range snapperRetention {
		line := fmt.Sprintf(`%s="%s"`, kv[0], kv[1])
		re := regexp.MustCompile(`(?m)^` + kv[0] + `=.*$`)
		if re.MatchString(conf) {
			conf = re.ReplaceAllString(conf, line)
			continue
		}
		if !strings.HasSuffix(conf, "\n") && conf != "" {
			conf += "\n"
		}
		conf += line + "\n"
	}
	return conf
}
