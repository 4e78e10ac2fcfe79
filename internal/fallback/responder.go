package fallback

import (
	"fmt"
	"math/rand"
	"strings"
)

// greetingTokens trigger a greeting reply when found anywhere in the message.
var greetingTokens = []string{"你好", "您好", "嗨", "hello", "hi"}

// greetingReplies is the fixed set a greeting reply is drawn from.
var greetingReplies = []string{
	"您好！🏺 我是文鉴通助手，专注于文物鉴定和收藏知识。有什么文物相关的问题吗？",
	"欢迎！🔍 我是您的文物鉴定顾问，可以帮您了解各类文物的鉴别方法和历史背景。",
	"您好！📜 文鉴通助手为您服务，我们专注于文物鉴定、收藏和保护知识咨询。",
}

type keywordReply struct {
	keyword string
	reply   string
}

// keywordReplies maps domain keywords to canned explanations. Declaration
// order matters: the first keyword found in the message wins.
var keywordReplies = []keywordReply{
	{"陶瓷", "陶瓷鉴定需要观察胎质、釉色、纹饰等特征。不同朝代有独特的工艺特点，比如唐三彩、宋瓷、明清青花等各有特色。"},
	{"青铜器", "青铜器鉴定要看器型、纹饰、铭文和锈色。真品青铜器的锈色自然牢固，器型符合时代特征。"},
	{"书画", "书画鉴定涉及笔墨风格、题跋印章、纸张材质等多方面。需要对比画家不同时期的作品特征。"},
	{"玉器", "玉器鉴定要看玉质、工艺、沁色和包浆。不同历史时期的玉器在造型和雕工上各有特点。"},
	{"鉴定", "文物鉴定是一门专业学问，需要综合考虑历史、艺术、科技等多方面因素。建议重要文物找专业机构鉴定。"},
	{"收藏", "文物收藏要注意真伪鉴别、保存条件和法律法规。建议从基础学起，逐步积累经验。"},
}

const defaultReplyFormat = "🏺 关于『%s』，我作为文物鉴定助手可以帮您：\n\n• 文物年代和背景知识\n• 材质工艺鉴别要点\n• 真伪辨别方法\n• 收藏保养建议\n• 相关法律法规\n\n请提供更具体的信息，我会尽力为您解答。对于重要文物，建议咨询专业鉴定机构。"

// Respond produces a deterministic rule-based reply when the remote provider
// is unavailable. lowered is the lowercased message used for matching;
// original is echoed case-preserving in the default reply. The function never
// fails and performs no I/O.
func Respond(lowered, original string) string {
	msg := strings.TrimSpace(lowered)

	for _, token := range greetingTokens {
		if strings.Contains(msg, token) {
			return greetingReplies[rand.Intn(len(greetingReplies))]
		}
	}

	for _, kr := range keywordReplies {
		if strings.Contains(msg, kr.keyword) {
			return kr.reply
		}
	}

	return fmt.Sprintf(defaultReplyFormat, original)
}
