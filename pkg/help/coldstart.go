package help

const ColdstartYAML = `# summarizer Quick Start

backend:
  default_url: "http://127.0.0.1:5000/api"
  override: "--api-url URL, SUMMARIZER_API_URL, or api_url in summarizer.yaml"

commands:
  signup: |
    summarizer signup --username ann --email ann@example.com

  login: |
    summarizer login --email ann@example.com

  summarize_text: |
    summarizer summarize --text "Paste a long article here..."

  summarize_file: |
    summarizer summarize --file report.pdf --format bullet_points --length 1

  summarize_page: |
    summarizer summarize --url "https://example.com/article" --language auto

  save_results: |
    summarizer summarize --file notes.txt --download --download-dir out --html out/summary.html

  scripting: |
    summarizer -q summarize --text "..." --output json | jq -r .summary

options:
  format: [paragraph, bullet_points, one_liner, academic]
  length: {1: short, 2: medium, 3: long}
  language: "ISO 639-1 code (en, fr, de, ...) or auto"
  output: [text, json, yaml]

config_file: |
  # summarizer.yaml
  api_url: http://127.0.0.1:5000/api
  timeout: 60s
  download_dir: .
  log_file: summarizer.log
  defaults:
    format: paragraph
    language: en
    length: 2

exit_codes:
  0: "success"
  1: "backend reported failure, connection failure, or missing input"
  2: "invalid configuration or flags"
`
