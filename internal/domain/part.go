package domain

// PartType identifies one of the five fixed attachment points on the robot
// chassis. The set is static; parts are never created or destroyed at runtime.
type PartType string

const (
	PartHead     PartType = "HEAD"
	PartTorso    PartType = "TORSO"
	PartArmRight PartType = "ARM_RIGHT"
	PartArmLeft  PartType = "ARM_LEFT"
	PartLegs     PartType = "LEGS"
)

// AllParts lists every part type in display order.
var AllParts = []PartType{PartHead, PartTorso, PartArmRight, PartArmLeft, PartLegs}

// ParsePartType converts a raw string (e.g. a URL parameter) into a PartType.
func ParsePartType(s string) (PartType, error) {
	for _, p := range AllParts {
		if string(p) == s {
			return p, nil
		}
	}
	return "", NewInvalidPartError(s)
}

// PartDefinition describes one component slot: how it is named and themed in
// the assembly bay, and which agent concept it teaches.
type PartDefinition struct {
	ID          string
	Type        PartType
	Name        string
	IconName    string
	Description string
	AITerm      string
	ColorTheme  string
}

var partsInfo = map[PartType]PartDefinition{
	PartHead: {
		ID:          "head",
		Type:        PartHead,
		Name:        "Sensor Head",
		IconName:    "Eye",
		Description: "How the robot sees and reads data.",
		AITerm:      "Perception / Input",
		ColorTheme:  "fuchsia",
	},
	PartTorso: {
		ID:          "torso",
		Type:        PartTorso,
		Name:        "Core Processor",
		IconName:    "Cpu",
		Description: "The brain. Defines personality.",
		AITerm:      "LLM / System Prompt",
		ColorTheme:  "cyan",
	},
	PartArmRight: {
		ID:          "arm_r",
		Type:        PartArmRight,
		Name:        "Tool Arm",
		IconName:    "Wrench",
		Description: "Ability to use external tools.",
		AITerm:      "Tools / Actions",
		ColorTheme:  "orange",
	},
	PartArmLeft: {
		ID:          "arm_l",
		Type:        PartArmLeft,
		Name:        "Logic Arm",
		IconName:    "Network",
		Description: "Planning the steps.",
		AITerm:      "Planning / Reasoning",
		ColorTheme:  "yellow",
	},
	PartLegs: {
		ID:          "legs",
		Type:        PartLegs,
		Name:        "Output Drive",
		IconName:    "MonitorUp",
		Description: "Delivering the result.",
		AITerm:      "Output",
		ColorTheme:  "emerald",
	},
}

// PartInfo returns the static definition for a part type.
func PartInfo(t PartType) PartDefinition {
	return partsInfo[t]
}

// AllPartInfo returns all part definitions in display order.
func AllPartInfo() []PartDefinition {
	defs := make([]PartDefinition, 0, len(AllParts))
	for _, t := range AllParts {
		defs = append(defs, partsInfo[t])
	}
	return defs
}
