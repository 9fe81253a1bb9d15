package component

// CameraComponent tags the view anchor that feedback effects attach to
type CameraComponent struct{}
