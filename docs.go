// Package party_sdk 提供组局（Party）SDK 核心能力：发帖报名审批、评论、通知落库与实时推送
// @title Party SDK API
// @version 1.0
// @description 组局（Party）SDK 的 RESTful API 文档：组局发布与报名审批、评论、通知、实时推送（SSE / WebSocket）
// @description
// @description ## 业务状态码说明
// @description | Code | 说明 |
// @description |------|------|
// @description | 0 | 成功 |
// @description | 10001 | 参数错误 |
// @description | 10004 | Token 无效 |
// @description | 10005 | 权限不足 |
// @description | 10006 | 资源不存在 |
// @description | 20001 | 不能申请自己的组局 |
// @description | 20002 | 组局已截止 |
// @description | 20003 | 重复申请 |
// @description | 20004 | 人数已满 |
// @description | 99999 | 内部错误 |
// @description
// @description ## HTTP 状态码说明
// @description - **200**: 成功
// @description - **400**: 参数错误或违反业务规则
// @description - **401**: 未登录/Token 无效
// @description - **403**: 权限不足
// @description - **404**: 资源不存在
// @description - **500**: 服务器内部错误
//
// @termsOfService https://github.com/cydxin/party-sdk
//
// @contact.name API Support
// @contact.url https://github.com/cydxin/party-sdk/issues
// @contact.email support@example.com
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:6789
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 格式：Bearer <token>
//
// @securityDefinitions.apikey QueryToken
// @in query
// @name token
// @description 用于 SSE / WebSocket 等无法传 header 的场景
package party_sdk
