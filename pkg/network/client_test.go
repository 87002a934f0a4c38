package network

import "testing"

func TestNewNetworkClientDefaults(t *testing.T) {
	c := NewNetworkClient(NewNetworkClientParams{})
	if c.minMentions != defaultMinMentions {
		t.Fatalf("minMentions = %d, want default %d for zero value", c.minMentions, defaultMinMentions)
	}
	if c.windowRadius != defaultWindowRadius {
		t.Fatalf("windowRadius = %d, want default %d", c.windowRadius, defaultWindowRadius)
	}
	if c.aliasMinLength != defaultAliasMinLength {
		t.Fatalf("aliasMinLength = %d, want default %d", c.aliasMinLength, defaultAliasMinLength)
	}
}

func TestNewNetworkClientKeepEverything(t *testing.T) {
	// MinMentions 0 means "use the default"; 1 is the keep-everything setting.
	c := NewNetworkClient(NewNetworkClientParams{MinMentions: 1})
	if c.minMentions != 1 {
		t.Fatalf("minMentions = %d, want 1", c.minMentions)
	}
}

func TestNewNetworkClientNegativeValues(t *testing.T) {
	c := NewNetworkClient(NewNetworkClientParams{MinMentions: -1, WindowRadius: -2, AliasMinLength: -3})
	if c.minMentions != defaultMinMentions || c.windowRadius != defaultWindowRadius || c.aliasMinLength != defaultAliasMinLength {
		t.Fatalf("negative params not coerced to defaults: %+v", c)
	}
}
