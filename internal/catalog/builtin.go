package catalog

import "github.com/mirothedj/robocat/internal/domain"

// Builtin returns the two stock lessons. Every lesson follows the same
// "bill of materials" template: HEAD is the input surface, TORSO the system
// setup or persona, the right arm the tool, the left arm the workflow, and
// LEGS the output.
func Builtin() []domain.Lesson {
	return []domain.Lesson{
		{
			ID:           1,
			Title:        "The Icon Generator",
			MissionBrief: "Lesson 1: The Bill of Materials. We are building a creative coding tool. Assemble the code components: Canvas, Controls, Artist Functions, and Export Logic to make the 'Icon Generator' alive.",
			MissionGoal:  "Map the 'Bill of Materials' to the Agent's anatomy.",
			AnatomyLabels: map[domain.PartType]string{
				domain.PartHead:     "The Controls (UI)",
				domain.PartTorso:    "The Initialization (Setup)",
				domain.PartArmRight: "The Artist (Functions)",
				domain.PartArmLeft:  "The Event Loop",
				domain.PartLegs:     "The Camera (Export)",
			},
			Options: map[domain.PartType][]domain.AnswerOption{
				domain.PartHead: {
					{ID: "opt_controls", Label: "Button & Text Inputs"},
					{ID: "opt_raw_data", Label: "Raw Binary Feed"},
					{ID: "opt_sensor", Label: "Lidar Sensor"},
				},
				domain.PartArmRight: {
					{ID: "opt_hammer", Label: "Pneumatic Hammer"},
					{ID: "opt_artist", Label: "Draw_Shape() Function"},
					{ID: "opt_drill", Label: "Laser Drill"},
				},
				domain.PartArmLeft: {
					{ID: "opt_workflow", Label: "Click -> Update -> Draw"},
					{ID: "opt_random", Label: "Random Number Generation"},
				},
				domain.PartLegs: {
					{ID: "opt_speaker", Label: "Audio Speaker"},
					{ID: "opt_camera", Label: "Save_File(.png)"},
				},
			},
			Requirements: map[domain.PartType]domain.Requirement{
				domain.PartHead: {
					PartType:        domain.PartHead,
					Mode:            domain.ModeOption,
					CorrectOptionID: "opt_controls",
					Hint:            "We need buttons and input boxes so the user can talk to the program.",
				},
				domain.PartTorso: {
					PartType: domain.PartTorso,
					Mode:     domain.ModeKeywords,
					Keywords: []string{"canvas", "palette", "variables", "initialization", "defaults", "blue", "star", "setup"},
					Hint:     "Phase A: Initialization. We need to set up 'The Canvas' and 'The Palette' (Variables).",
				},
				domain.PartArmRight: {
					PartType:        domain.PartArmRight,
					Mode:            domain.ModeOption,
					CorrectOptionID: "opt_artist",
					Hint:            "We need reusable blocks of code that know how to draw squares and circles.",
				},
				domain.PartArmLeft: {
					PartType:        domain.PartArmLeft,
					Mode:            domain.ModeOption,
					CorrectOptionID: "opt_workflow",
					Hint:            "Connect the logic: Input Detected -> Trigger Refresh -> Draw Symbol.",
				},
				domain.PartLegs: {
					PartType:        domain.PartLegs,
					Mode:            domain.ModeOption,
					CorrectOptionID: "opt_camera",
					Hint:            "Phase D: Output. We need a function to take what is on the canvas and save it as a file.",
				},
			},
		},
		{
			ID:           2,
			Title:        "The Researcher Bot",
			MissionBrief: "Lesson 2: Data Pipelines. We need a robot that can consume web content (YouTube) and transform it into a study guide.",
			MissionGoal:  "Build an agent that watches videos and writes summaries.",
			AnatomyLabels: map[domain.PartType]string{
				domain.PartHead:     "Data Source (URL)",
				domain.PartTorso:    "System Persona",
				domain.PartArmRight: "Scraper Tool",
				domain.PartArmLeft:  "Reasoning Chain",
				domain.PartLegs:     "Final Artifact (Doc)",
			},
			Options: map[domain.PartType][]domain.AnswerOption{
				domain.PartHead: {
					{ID: "opt_url", Label: "URL Link Reader"},
					{ID: "opt_temp", Label: "Temperature Sensor"},
					{ID: "opt_motion", Label: "Motion Detector"},
				},
				domain.PartArmRight: {
					{ID: "opt_music", Label: "Music Player"},
					{ID: "opt_scraper", Label: "Transcript_Scraper"},
					{ID: "opt_laser", Label: "Mining Laser"},
				},
				domain.PartArmLeft: {
					{ID: "opt_logic_res", Label: "Read -> Extract -> Summarize"},
					{ID: "opt_logic_run", Label: "See Wall -> Jump -> Run"},
				},
				domain.PartLegs: {
					{ID: "opt_doc", Label: "Write_Document(.txt)"},
					{ID: "opt_wheels", Label: "High Speed Wheels"},
				},
			},
			Requirements: map[domain.PartType]domain.Requirement{
				domain.PartHead: {
					PartType:        domain.PartHead,
					Mode:            domain.ModeOption,
					CorrectOptionID: "opt_url",
					Hint:            "YouTube videos are on the web. We need to read the Link (URL).",
				},
				domain.PartTorso: {
					PartType: domain.PartTorso,
					Mode:     domain.ModeKeywords,
					Keywords: []string{"research", "teacher", "summarize", "student", "study", "fact"},
					Hint:     "This robot helps students learn. Tell it to be a Researcher or Helper.",
				},
				domain.PartArmRight: {
					PartType:        domain.PartArmRight,
					Mode:            domain.ModeOption,
					CorrectOptionID: "opt_scraper",
					Hint:            "We need to get the words out of the video. A 'Scraper' can do that.",
				},
				domain.PartArmLeft: {
					PartType:        domain.PartArmLeft,
					Mode:            domain.ModeOption,
					CorrectOptionID: "opt_logic_res",
					Hint:            "First read, then extract text, then summarize.",
				},
				domain.PartLegs: {
					PartType:        domain.PartLegs,
					Mode:            domain.ModeOption,
					CorrectOptionID: "opt_doc",
					Hint:            "A summary is usually text. How do we save text?",
				},
			},
		},
	}
}
