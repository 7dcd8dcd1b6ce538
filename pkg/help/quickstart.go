package help

// QuickstartYAML is the reference printed by "metasift quickstart".
const QuickstartYAML = `# metasift Quick Start

commands:
  extract_files: |
    metasift extract page.html other.html

  extract_directory: |
    metasift extract --workers 8 --out records.json pages/

  extract_stdin: |
    curl -s https://example.com | metasift extract --records-only -

  filter: |
    metasift filter --query "cats dogs" records.json

  filter_explain: |
    metasift filter --explain --query "cats dogs" records.json

  top_keywords: |
    metasift keywords --top 10 records.json

  pipeline: |
    metasift --format yaml extract pages/ | metasift filter --query "golang" --fields url,title -

record_fields:
  url: "og:url property"
  siteName: "og:site_name property"
  title: "First <title> text (may be empty)"
  description: "og:description property or trimmed name=description, last tag wins"
  keywords: "name=keywords split on commas; [] when the tag is empty"
  author: "name=author"

query_rules:
  - "Lowercased; '.', ',' and '-' are removed"
  - "Split on single spaces; a record matches if any term matches"
  - "A term matches when it contains, or is contained in, a present field value"
  - "Results keep term order, then record order, each record once"
  - "Empty query returns every record"

config:
  METASIFT_WORKERS: "Concurrent extract workers (default 4)"
  METASIFT_FORMAT: "json or yaml (default json)"
  METASIFT_LOG_LEVEL: "debug, info, warn, error (default info)"
  METASIFT_TOP_KEYWORDS: "keywords --top default (default 25, 0 for all)"
  METASIFT_EXTENSIONS: "Directory walk extensions (default .html,.htm)"
  file: "--config metasift.yaml overrides env; flags override both"

error_behavior:
  - "Unreadable or non-UTF-8 inputs are recorded in --manifest and skipped"
  - "Exit codes: 0=success, 1=partial failure, 2=complete failure"
`
