package args

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Options
	}{
		{
			name: "empty",
			argv: nil,
			want: Options{Positionals: []string{}},
		},
		{
			name: "positional and template",
			argv: []string{"my-lib", "-t", "vue"},
			want: Options{Positionals: []string{"my-lib"}, Template: "vue"},
		},
		{
			name: "long template with equals",
			argv: []string{"--template=react", "app"},
			want: Options{Positionals: []string{"app"}, Template: "react"},
		},
		{
			name: "immediate short",
			argv: []string{"app", "-i"},
			want: Options{Positionals: []string{"app"}, Immediate: True},
		},
		{
			name: "no-immediate",
			argv: []string{"--no-immediate"},
			want: Options{Positionals: []string{}, Immediate: False},
		},
		{
			name: "interactive forced",
			argv: []string{"--interactive"},
			want: Options{Positionals: []string{}, Interactive: True},
		},
		{
			name: "no-interactive with overwrite",
			argv: []string{"lib", "--no-interactive", "--overwrite"},
			want: Options{Positionals: []string{"lib"}, Interactive: False, Overwrite: True},
		},
		{
			name: "last occurrence wins",
			argv: []string{"--immediate", "--no-immediate", "--no-interactive", "--interactive"},
			want: Options{Positionals: []string{}, Immediate: False, Interactive: True},
		},
		{
			name: "explicit value",
			argv: []string{"--immediate=false"},
			want: Options{Positionals: []string{}, Immediate: False},
		},
		{
			name: "help",
			argv: []string{"-h"},
			want: Options{Positionals: []string{}, Help: True},
		},
		{
			name: "positionals keep order",
			argv: []string{"a", "--overwrite", "b", "c"},
			want: Options{Positionals: []string{"a", "b", "c"}, Overwrite: True},
		},
		{
			name: "after terminator",
			argv: []string{"--", "--not-a-flag"},
			want: Options{Positionals: []string{"--not-a-flag"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.argv)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParse_UnsetFlagsStayUnset(t *testing.T) {
	opts, err := Parse([]string{"app"})
	require.NoError(t, err)
	assert.Equal(t, Unset, opts.Immediate)
	assert.Equal(t, Unset, opts.Interactive)
	assert.False(t, opts.Immediate.IsSet())
}

func TestParse_IgnoresUnknownFlags(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Options
	}{
		{
			name: "long flag between known ones",
			argv: []string{"my-app", "--foo", "-t", "react"},
			want: Options{Positionals: []string{"my-app"}, Template: "react"},
		},
		{
			name: "unknown with equals value",
			argv: []string{"--color=always", "app"},
			want: Options{Positionals: []string{"app"}},
		},
		{
			name: "unknown shorthand",
			argv: []string{"app", "-x", "--overwrite"},
			want: Options{Positionals: []string{"app"}, Overwrite: True},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.argv)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParse_TemplateWithoutValue(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Options
	}{
		{
			name: "long form last",
			argv: []string{"app", "--template"},
			want: Options{Positionals: []string{"app"}},
		},
		{
			name: "short form last",
			argv: []string{"app", "-t"},
			want: Options{Positionals: []string{"app"}},
		},
		{
			name: "followed by a flag",
			argv: []string{"app", "--template", "--overwrite"},
			want: Options{Positionals: []string{"app"}, Overwrite: True},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.argv)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParse_NegatedSwitches(t *testing.T) {
	opts, err := Parse([]string{"app", "--overwrite", "--no-overwrite", "--no-help"})
	require.NoError(t, err)
	assert.Equal(t, False, opts.Overwrite)
	assert.Equal(t, False, opts.Help)
	assert.Equal(t, Unset, opts.Immediate)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		argv []string
		want []string
	}{
		{[]string{"-t", "vue"}, []string{"-t", "vue"}},
		{[]string{"-t"}, []string{"--template="}},
		{[]string{"--template", "-i"}, []string{"--template=", "-i"}},
		{[]string{"--", "--template"}, []string{"--", "--template"}},
		{[]string{}, []string{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.argv), "Normalize(%q)", tt.argv)
	}
}

func TestBind_HelpStaysBool(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Bind(fs, &Options{})
	require.NoError(t, fs.Parse([]string{"--help"}))

	help, err := fs.GetBool(FlagHelp)
	require.NoError(t, err)
	assert.True(t, help)
}

func TestBind_UnsetHelpReadsFalse(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	Bind(fs, &Options{})
	require.NoError(t, fs.Parse([]string{"app"}))

	help, err := fs.GetBool(FlagHelp)
	require.NoError(t, err)
	assert.False(t, help)

	require.NoError(t, fs.Parse([]string{"--help", "--no-help"}))
	help, err = fs.GetBool(FlagHelp)
	require.NoError(t, err)
	assert.False(t, help)
}

func TestProjectName(t *testing.T) {
	name, ok := (&Options{}).ProjectName()
	assert.False(t, ok)
	assert.Empty(t, name)

	name, ok = (&Options{Positionals: []string{"x", "y"}}).ProjectName()
	assert.True(t, ok)
	assert.Equal(t, "x", name)
}

func TestTriState(t *testing.T) {
	assert.True(t, Unset.Or(true))
	assert.False(t, Unset.Or(false))
	assert.False(t, False.Or(true))
	assert.True(t, True.Or(false))
	assert.Equal(t, "unset", Unset.String())
	assert.Equal(t, True, FromBool(true))
	assert.Equal(t, False, FromBool(false))
}
