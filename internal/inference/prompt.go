package inference

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/searchright/talent-tagger/internal/types"
	"github.com/searchright/talent-tagger/internal/vectorstore"
)

// snippetRuneLimit caps how much of each evidence document is rendered into
// the prompt. Truncation is character based, after flattening newlines.
const snippetRuneLimit = 200

// roleAndTaxonomy frames the recruiter role, the evidence format, the
// anti-fabrication constraints, and the seven core tag categories.
const roleAndTaxonomy = `당신은 전문 리쿠르터입니다. 지원자의 이력서(JSON)와
"[news] KT (2017-12-21): [2017 디지털혁신상품] KT 기가지니  https://m.ddaily.co.kr/page/view/2017122115161782509"
"[news] 엘박스 (2024-01-26): [더벨][VC 투자기업] 판례 검색 1위 엘박스, 소송금융 시장 뛰어든다  https://www.thebell.co.kr/free/content/ArticleView.asp?key=202401231844596240101829"
형태로 제공되는 뉴스데이터를 참고하여, **아래 7가지 핵심 카테고리**를 가능하다면 포함해주세요.
이 외에도 자유롭게 의미 있는 추가 태그를 뽑아 **태그 형태**로 추출하세요.

뉴스데이터는 반드시 함께 제공되는 링크를 방문하여 본문의 내용을 결과에 반영하세요.
**절대** 이력서에 없는 회사의 문서를 사용하거나, 다른 회사 경험을 만들어내지 마세요.
또한, 예제나 플레이스홀더를 그대로 복붙하지 마세요.

핵심 카테고리:
1. **학력**: 최상위권 대학교 졸업 여부
예시: “상위권대학교 (학교명)”

2. **대규모 회사 경험**: 메이저 기업 근무 여부
예시: “대규모 회사 경험 (회사1·회사2·…)”

3. **성장기 스타트업 경험**: 포지션 기간 기반 조직·투자 규모 성장
예시: “성장기스타트업 경험 (스타트업명 YYYY–YYYY: 조직·투자 규모 X배 성장)”

4. **리더십**: 매니징 직책 보유 여부
예시: “리더쉽 (직책1·직책2·…)”

5. **대용량 데이터 처리 경험**: 대규모 기술 프로젝트 참여
예시: “대용량데이터처리경험 (회사명 프로젝트명)”

6. **M&A 경험**: 인수·합병 참여 여부
예시: “M&A 경험 (인수 대상·매각 대상)”

7. **IPO 및 투자 유치**: 상장·펀딩 주도 여부
예시: “IPO 경험 (회사명 IPO)” 또는 “신규 투자 유치 경험 (스타트업명 YYYY: 투자액)”

`

// fewShotExamples anchors output style and tag density.
const fewShotExamples = `추론 예시:
- Input: talent1.json
  Output: 상위권대학교 (KAIST), 대규모 회사 경험 (삼성전자·네이버), 성장기스타트업 경험 (토스 조직 4.5배 확장), 리더쉽 (CTO·Director·팀장), 대용량데이터처리경험 (네이버 하이퍼클로바 개발), M&A 경험 (요기요 매각), 신규 투자유치 (토스 시리즈 F·엘박스 시리즈 B)
- Input: talent2.json
  Output: 상위권대학교 (고려대학교), 성장기스타트업 경험 (토스 16년–19년 조직·투자 규모 2배 성장), 리더쉽 (챕터 리드·테크 리드), 대용량데이터처리경험 (LLM 대규모 파이프라인 구축)
- Input: talent3.json
  Output: 상위권대학교 (연세대학교), 대규모 회사 경험 (KT 전략기획실·미디어 성장전략), 리더쉽 (팀장·CFO), IPO 경험 (밀리의서재 IPO), M&A 경험 (밀리의서재 인수)
- Input: talent4.json
  Output: 상위권대학교 (서울대학교), 대규모 회사 경험 (삼성전자·SKT), M&A 경험 (요기요 사모펀드 매각), 리더쉽 (CPO·창업), 신규 투자유치

`

// ComposePrompt deterministically renders the full instruction block: role
// framing and taxonomy, output example, few-shot examples, the serialized
// resume (recognized fields plus pass-through extras), the pooled evidence
// list, and the answer-format instruction. Pure function of its inputs.
func ComposePrompt(payload *types.ResumePayload, docs []vectorstore.Document) (string, error) {
	resumeJSON, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to serialize resume payload: %w", err)
	}

	var b strings.Builder
	b.WriteString(roleAndTaxonomy)

	b.WriteString("출력은 **JSON** 형태로, `\"tags\"` 배열에 각 태그를 넣어주세요.  \n\n")
	b.WriteString("예시)\n```json\n")
	b.WriteString("{\n\"tags\": [\n")
	b.WriteString("    \"상위권대학교 (연세대학교)\",\n")
	b.WriteString("    \"대규모 회사 경험 (네이버·토스)\",\n")
	b.WriteString("    \"성장기스타트업 경험 (토스 2016–2019: 조직·투자 규모 2배 성장)\",\n")
	b.WriteString("    \"리더쉽 (Tech Lead·Chapter Lead)\",\n")
	b.WriteString("    \"대용량데이터처리경험 (네이버 하이퍼클로바 개발)\",\n")
	b.WriteString("    \"M&A 경험 (요기요 매각)\",\n")
	b.WriteString("    \"신규 투자 유치 경험 (비바리퍼블리카 2018-12-10: 900억 투자)\",\n")
	b.WriteString("    \"수상 경력 (사내 우수 엔지니어상 수상)\"\n")
	b.WriteString("]\n}\n```\n\n")

	b.WriteString(fewShotExamples)

	b.WriteString("지원자 이력서(JSON):\n")
	b.Write(resumeJSON)
	b.WriteString("\n\n관련 회사 문서:\n")
	for _, d := range docs {
		b.WriteString(renderDocument(d))
	}

	b.WriteString("\n답변 형식(한국어 JSON):\n```json\n{ \"tags\": [\"태그1\", \"태그2\", ...] }\n```")

	return b.String(), nil
}

// renderDocument formats one evidence entry as
// "- [doc_type] company_name (published_date): snippet...".
func renderDocument(d vectorstore.Document) string {
	date := ""
	if d.PublishedAt != nil {
		date = d.PublishedAt.Format("2006-01-02")
	}

	snippet := strings.ReplaceAll(d.Content, "\n", " ")
	if runes := []rune(snippet); len(runes) > snippetRuneLimit {
		snippet = string(runes[:snippetRuneLimit])
	}

	return fmt.Sprintf("- [%s] %s (%s): %s...\n", d.DocType, d.CompanyName, date, snippet)
}
