package catalog

// lessonSchema is the JSON schema a lesson pack file must satisfy before it
// is mapped into domain types. Shape errors are reported per file with the
// offending fields; deeper rules (correct option offered, keyword presence)
// live in domain validation.
const lessonSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "title", "mission_brief", "mission_goal", "parts"],
  "properties": {
    "id": {"type": "integer", "minimum": 1},
    "title": {"type": "string", "minLength": 1},
    "mission_brief": {"type": "string", "minLength": 1},
    "mission_goal": {"type": "string", "minLength": 1},
    "anatomy_labels": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "parts": {
      "type": "object",
      "required": ["HEAD", "TORSO", "ARM_RIGHT", "ARM_LEFT", "LEGS"],
      "additionalProperties": false,
      "patternProperties": {
        "^(HEAD|TORSO|ARM_RIGHT|ARM_LEFT|LEGS)$": {
          "type": "object",
          "properties": {
            "mode": {"type": "string", "enum": ["option", "keywords", "always"]},
            "correct_option_id": {"type": "string"},
            "keywords": {
              "type": "array",
              "items": {"type": "string", "minLength": 1}
            },
            "hint": {"type": "string"},
            "options": {
              "type": "array",
              "items": {
                "type": "object",
                "required": ["id", "label"],
                "properties": {
                  "id": {"type": "string", "minLength": 1},
                  "label": {"type": "string", "minLength": 1}
                }
              }
            }
          }
        }
      }
    }
  }
}`
