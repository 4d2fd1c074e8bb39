package main

import (
	"testing"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"glass scene", "glass", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s', got %T", tt.sceneType, scene)
				}
			} else {
				if err != nil {
					t.Errorf("Expected scene for type '%s', got error: %v", tt.sceneType, err)
				}
				if scene == nil {
					t.Errorf("Expected scene for type '%s', got nil", tt.sceneType)
				}
				if scene != nil {
					if err := scene.Validate(); err != nil {
						t.Errorf("Expected valid scene for type '%s', got: %v", tt.sceneType, err)
					}
				}
			}
		})
	}
}
