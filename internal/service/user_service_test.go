package service

import (
	"reflect"
	"testing"

	"Community_Hub/internal/model"
)

func strPtr(s string) *string { return &s }

func TestMergePreferences(t *testing.T) {
	base := model.Preferences{Lang: "es", Theme: "light", UnlockedThemes: []string{"ocean"}}

	tests := []struct {
		name  string
		patch PreferencesPatch
		want  model.Preferences
	}{
		{
			"empty patch keeps everything",
			PreferencesPatch{},
			base,
		},
		{
			"lang only",
			PreferencesPatch{Lang: strPtr("fr")},
			model.Preferences{Lang: "fr", Theme: "light", UnlockedThemes: []string{"ocean"}},
		},
		{
			"theme only",
			PreferencesPatch{Theme: strPtr("dark")},
			model.Preferences{Lang: "es", Theme: "dark", UnlockedThemes: []string{"ocean"}},
		},
		{
			"themes replaced",
			PreferencesPatch{UnlockedThemes: []string{"forest", "sunset"}},
			model.Preferences{Lang: "es", Theme: "light", UnlockedThemes: []string{"forest", "sunset"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MergePreferences(base, tt.patch); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergePreferences = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMergeThemes(t *testing.T) {
	got := mergeThemes([]string{"ocean"}, []string{"ocean", "forest", "sunset"})
	want := []string{"ocean", "forest", "sunset"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mergeThemes = %v, want %v", got, want)
	}

	if got := mergeThemes(nil, nil); len(got) != 0 {
		t.Errorf("mergeThemes(nil, nil) = %v", got)
	}
}

func TestDefaultPreferences(t *testing.T) {
	p := model.DefaultPreferences()
	if p.Lang != "es" || p.Theme != "light" {
		t.Errorf("defaults = %+v", p)
	}
	if p.UnlockedThemes == nil || len(p.UnlockedThemes) != 0 {
		t.Errorf("UnlockedThemes = %v, want empty non-nil slice", p.UnlockedThemes)
	}
}
