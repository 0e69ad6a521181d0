package simulation

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// VectorToProto converts a geometry vector into its wire form.
func VectorToProto(v geometry.Vector2D) *pb.Vector2D {
	return &pb.Vector2D{X: v.X, Y: v.Y}
}

// VectorFromProto is the inverse of VectorToProto. A nil message is the zero vector.
func VectorFromProto(p *pb.Vector2D) geometry.Vector2D {
	return geometry.Vector2D{X: p.GetX(), Y: p.GetY()}
}

func RectToProto(r geometry.Rect) *pb.Rectangle {
	return &pb.Rectangle{Min: VectorToProto(r.Min), Max: VectorToProto(r.Max)}
}

func RectFromProto(p *pb.Rectangle) geometry.Rect {
	return geometry.Rect{Min: VectorFromProto(p.GetMin()), Max: VectorFromProto(p.GetMax())}
}

// PackColor packs c as 0xRRGGBBAA.
func PackColor(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

func UnpackColor(u uint32) color.RGBA {
	return color.RGBA{R: uint8(u >> 24), G: uint8(u >> 16), B: uint8(u >> 8), A: uint8(u)}
}

// BirdToProto converts a bird into the renderer envelope. The display
// position is computed through frame.
func BirdToProto(b flock.Bird, frame geometry.Frame) *pb.BirdState {
	return &pb.BirdState{
		Position:    VectorToProto(b.Position),
		Velocity:    VectorToProto(b.Velocity),
		SightRadius: b.SightRadius,
		Color:       PackColor(b.Color),
		Display:     VectorToProto(frame.ToDisplay(b.Position)),
	}
}

// BirdFromProto converts a recorded bird back. The display position is
// derived data and is dropped.
func BirdFromProto(p *pb.BirdState) flock.Bird {
	return flock.Bird{
		Position:    VectorFromProto(p.GetPosition()),
		Velocity:    VectorFromProto(p.GetVelocity()),
		SightRadius: p.GetSightRadius(),
		Color:       UnpackColor(p.GetColor()),
	}
}
